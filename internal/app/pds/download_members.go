package pds

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

// DownloadMembersRequest contains the request details for downloading PDS members into a workspace
type DownloadMembersRequest struct {
	domain.PdsConfiguration
	Workspace   string            `json:"workspace"`
	Scope       string            `json:"scope"`
	Environment map[string]string `json:"environment"`
}

// DownloadMembersResponse contains the response for a DownloadMembersRequest
type DownloadMembersResponse struct {
	Result       bool     `json:"result"`
	InvocationID string   `json:"invocationId,omitempty"`
	ExitCode     int      `json:"exitCode"`
	Message      string   `json:"message,omitempty"`
	Log          []string `json:"log"`
}

// HandleDownloadMembers will run the downloader CLI for the requested configuration
func (svc *WebhookServiceImpl) HandleDownloadMembers(c echo.Context) error {
	req := DownloadMembersRequest{}
	if err := c.Bind(&req); err != nil {
		zap.L().Error("invalid request, failed to unmarshall json", zap.Error(err))
		return c.String(http.StatusBadRequest, fmt.Sprintf("failed to unmarshall json: %s", err.Error()))
	}

	if len(req.Workspace) == 0 {
		return c.String(http.StatusBadRequest, "workspace is required")
	}

	recorder := &lineRecorder{}
	result, err := svc.Downloads.Download(c.Request().Context(), &domain.DownloadRequest{
		Configuration: req.PdsConfiguration,
		Workspace:     req.Workspace,
		Scope:         req.Scope,
		Environment:   environmentPairs(req.Environment),
	}, recorder)

	res := DownloadMembersResponse{
		Result:   err == nil,
		ExitCode: -1,
		Log:      recorder.Lines(),
	}
	if result != nil {
		res.InvocationID = result.InvocationID
		res.ExitCode = result.ExitCode
	}

	if err == nil {
		zap.L().Info("PDS members downloaded", zap.String("connectionId", req.ConnectionID), zap.String("workspace", req.Workspace))
		return c.JSON(http.StatusOK, &res)
	}

	if domain.IsConfigurationError(err) {
		return c.String(http.StatusBadRequest, err.Error())
	}

	var toolFailure *domain.ToolFailureError
	if errors.As(err, &toolFailure) {
		res.Message = toolFailure.Error()
		return c.JSON(http.StatusUnprocessableEntity, &res)
	}

	return c.String(http.StatusInternalServerError, err.Error())
}

func environmentPairs(environment map[string]string) []string {
	pairs := lo.MapToSlice(environment, func(k string, v string) string {
		return k + "=" + v
	})
	sort.Strings(pairs)
	return pairs
}
