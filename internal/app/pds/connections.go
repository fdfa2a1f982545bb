package pds

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ConnectionSummary describes a configured host connection
type ConnectionSummary struct {
	ID          string `json:"id"`
	Host        string `json:"host"`
	Port        string `json:"port"`
	CodePage    string `json:"codePage"`
	Encoding    string `json:"encoding,omitempty"`
	Description string `json:"description,omitempty"`
}

// GetConnectionsResponse contains the configured connections, ordered by id
type GetConnectionsResponse struct {
	Connections []ConnectionSummary `json:"connections"`
}

// HandleGetConnections will list the configured host connections
func (svc *WebhookServiceImpl) HandleGetConnections(c echo.Context) error {
	res := GetConnectionsResponse{
		Connections: make([]ConnectionSummary, 0),
	}

	for _, id := range svc.Connections.ConnectionIDs() {
		connection, err := svc.Connections.ResolveConnection(id)
		if err != nil {
			zap.L().Error("skipping unresolvable connection", zap.String("id", id), zap.Error(err))
			continue
		}

		encoding, _ := codePageName(connection.CodePage)
		res.Connections = append(res.Connections, ConnectionSummary{
			ID:          id,
			Host:        connection.Host,
			Port:        connection.Port,
			CodePage:    connection.CodePage,
			Encoding:    encoding,
			Description: connection.Description,
		})
	}

	return c.JSON(http.StatusOK, &res)
}
