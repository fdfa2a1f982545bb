// Package pds downloads partitioned data set members through the downloader CLI
package pds

import (
	"context"
	"io"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

//go:generate go run github.com/golang/mock/mockgen -source ./resolvers.go -destination=./mocks/mock_resolvers.go -package=mocks

// ConnectionResolver looks up a host connection by id
type ConnectionResolver interface {
	// ResolveConnection fails with domain.ErrConfigurationNotFound for an unknown id
	ResolveConnection(id string) (*domain.Connection, error)
}

// CredentialResolver looks up credentials by id for the calling scope
type CredentialResolver interface {
	// ResolveCredentials fails with domain.ErrConfigurationNotFound for an unknown id and with
	// domain.ErrCredentialsScope when the scope may not use the credentials
	ResolveCredentials(id string, scope string) (*domain.Credentials, error)
}

// LocationResolver returns the downloader CLI installation directory
type LocationResolver interface {
	Location(isUnix bool) string
}

// ConnectionCatalog lists the configured connections
type ConnectionCatalog interface {
	ConnectionIDs() []string
	ResolveConnection(id string) (*domain.Connection, error)
}

// DownloadService interfaces for the downloader invoker
type DownloadService interface {
	// Download runs the downloader CLI for req, writing progress and CLI output to sink
	Download(ctx context.Context, req *domain.DownloadRequest, sink io.Writer) (*domain.DownloadResult, error)
	// Validate resolves the configuration without launching the CLI
	Validate(configuration *domain.PdsConfiguration, scope string) (*domain.ValidationResult, error)
}
