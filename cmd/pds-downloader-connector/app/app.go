package app

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/venafi/pds-downloader-connector/internal/app/config"
	"github.com/venafi/pds-downloader-connector/internal/app/launcher"
	"github.com/venafi/pds-downloader-connector/internal/app/pds"
	"github.com/venafi/pds-downloader-connector/internal/app/platform"
	"github.com/venafi/pds-downloader-connector/internal/handler/web"
)

func New() *fx.App {
	var logger *zap.Logger

	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			config.Load,
			configureLogger,
			config.NewStore,
			func(s *config.Store) pds.ConnectionResolver { return s },
			func(s *config.Store) pds.CredentialResolver { return s },
			func(s *config.Store) pds.LocationResolver { return s },
			func(s *config.Store) pds.ConnectionCatalog { return s },
			fx.Annotate(platform.NewLocalEnvironment, fx.As(new(platform.Environment))),
			fx.Annotate(launcher.NewCmdLauncher, fx.As(new(launcher.Launcher))),
			fx.Annotate(pds.NewDownloader, fx.As(new(pds.DownloadService))),
			fx.Annotate(pds.NewWebhookService, fx.As(new(web.WebhookService))),
			web.ConfigureHTTPServers,
		),
		fx.Invoke(
			web.RegisterHandlers,
		),
		fx.Populate(&logger),
	)

	if logger != nil {
		logger.Info("PDS downloader connector starting")
	}

	return app
}

func configureLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	loggerConfig.EncoderConfig.TimeKey = "time"
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	zap.RedirectStdLog(zap.L())
	return zap.L(), nil
}
