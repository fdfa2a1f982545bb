package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationNotFound is returned for an unknown connection or credentials id
	ErrConfigurationNotFound = errors.New("configuration not found")
	// ErrCredentialsScope is returned when credentials exist but are not available to the caller
	ErrCredentialsScope = errors.New("credentials not accessible from scope")
	// ErrFilesystem is returned when the workspace or the CLI working-data directory cannot be created
	ErrFilesystem = errors.New("filesystem error")
	// ErrLaunch is returned when the downloader CLI could not be started
	ErrLaunch = errors.New("launch error")
)

// ToolFailureError is returned when the downloader CLI exits with a non-zero value
type ToolFailureError struct {
	Script   string
	ExitCode int
}

func (e *ToolFailureError) Error() string {
	return fmt.Sprintf("call %s exited with value = %d", e.Script, e.ExitCode)
}

// IsConfigurationError reports whether err was raised while resolving connection or credentials
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfigurationNotFound) || errors.Is(err, ErrCredentialsScope)
}
