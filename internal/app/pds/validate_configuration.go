package pds

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

// ValidateConfigurationRequest contains the configuration to check
type ValidateConfigurationRequest struct {
	ConnectionID  string `json:"connectionId"`
	CredentialsID string `json:"credentialsId"`
	Scope         string `json:"scope"`
}

// ValidateConfigurationResponse contains the response for a ValidateConfigurationRequest
type ValidateConfigurationResponse struct {
	Result  bool   `json:"result"`
	Script  string `json:"script,omitempty"`
	Message string `json:"message,omitempty"`
}

// HandleValidateConfiguration will resolve the connection and credentials and check the driver script
// is installed, without launching it
func (svc *WebhookServiceImpl) HandleValidateConfiguration(c echo.Context) error {
	req := ValidateConfigurationRequest{}
	if err := c.Bind(&req); err != nil {
		zap.L().Error("invalid request, failed to unmarshall json", zap.Error(err))
		return c.String(http.StatusBadRequest, fmt.Sprintf("failed to unmarshall json: %s", err.Error()))
	}

	validation, err := svc.Downloads.Validate(&domain.PdsConfiguration{
		ConnectionID:  req.ConnectionID,
		CredentialsID: req.CredentialsID,
	}, req.Scope)
	if err != nil {
		zap.L().Info("configuration is not valid", zap.String("connectionId", req.ConnectionID), zap.Error(err))
		return c.JSON(http.StatusOK, &ValidateConfigurationResponse{
			Result:  false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &ValidateConfigurationResponse{
		Result: true,
		Script: validation.Script,
	})
}
