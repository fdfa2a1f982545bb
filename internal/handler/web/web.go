// Package web contains the web server and registered routes
package web

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/square/go-jose.v2"

	"github.com/venafi/pds-downloader-connector/internal/app/config"
)

// WebhookService ...
type WebhookService interface {
	HandleDownloadMembers(c echo.Context) error
	HandleGetConnections(c echo.Context) error
	HandleValidateConfiguration(c echo.Context) error
}

// ConfigureHTTPServers creates an HTTP server bound to the fx lifecycle
// returns the echo engine for serving API
func ConfigureHTTPServers(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting echo server", zap.String("address", cfg.Server.Address))
				if err := e.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
					zap.L().Error("failed to start echo server", zap.Error(err))
					if err = shutdowner.Shutdown(); err != nil {
						zap.L().Error("fx shutdown error", zap.Error(err))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return e, nil
}

// RegisterHandlers will add the health check and the webhook routes
func RegisterHandlers(e *echo.Echo, whService WebhookService, cfg *config.Config) error {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	g := e.Group("/v1")
	if pk, err := loadPayloadKey(cfg.Server.PayloadKeyPath); err != nil {
		zap.L().Error("payload encryption disabled", zap.String("path", cfg.Server.PayloadKeyPath), zap.Error(err))
	} else {
		zap.L().Info("adding payload encryption middleware")
		g.Use(payloadDecryption(pk))
	}

	g.POST("/downloadmembers", whService.HandleDownloadMembers)
	g.POST("/validateconfiguration", whService.HandleValidateConfiguration)
	g.GET("/connections", whService.HandleGetConnections)

	return nil
}

func loadPayloadKey(path string) (*rsa.PrivateKey, error) {
	privateKeyPemData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("payload encryption key not found or readable: %w", err)
	}
	p, _ := pem.Decode(privateKeyPemData)
	if p == nil {
		return nil, errors.New("payload encryption key not in PEM format")
	}
	pk, err := x509.ParsePKCS1PrivateKey(p.Bytes)
	if err != nil {
		return nil, fmt.Errorf("payload encryption key not properly encoded: %w", err)
	}
	return pk, nil
}

// payloadDecryption replaces a JWE compact serialized request body with its plain text. Requests
// without a body (GET /v1/connections) pass through untouched.
func payloadDecryption(pk *rsa.PrivateKey) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			if len(bytes.TrimSpace(body)) == 0 {
				req.Body = io.NopCloser(bytes.NewReader(body))
				return next(c)
			}
			object, err := jose.ParseEncrypted(string(body))
			if err != nil {
				return c.String(http.StatusBadRequest, fmt.Sprintf("failed to parse encrypted payload: %s", err.Error()))
			}
			decrypted, err := object.Decrypt(pk)
			if err != nil {
				return c.String(http.StatusBadRequest, fmt.Sprintf("failed to decrypt payload: %s", err.Error()))
			}
			req.Body = io.NopCloser(bytes.NewReader(decrypted))
			return next(c)
		}
	}
}
