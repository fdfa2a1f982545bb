package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

// Store resolves connections and credentials by identifier from the loaded configuration
type Store struct {
	config *Config
}

// NewStore will return a new Store for cfg
func NewStore(cfg *Config) *Store {
	return &Store{config: cfg}
}

// Location returns the downloader CLI installation directory for a Unix or other target
func (s *Store) Location(isUnix bool) string {
	return s.config.Location(isUnix)
}

// ResolveConnection returns the connection registered under id
func (s *Store) ResolveConnection(id string) (*domain.Connection, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("connection id is empty: %w", domain.ErrConfigurationNotFound)
	}

	connection, ok := s.config.Connections[id]
	if !ok {
		return nil, fmt.Errorf(`connection "%s": %w`, id, domain.ErrConfigurationNotFound)
	}

	return &connection, nil
}

// ResolveCredentials returns the credentials registered under id if they are accessible from scope
func (s *Store) ResolveCredentials(id string, scope string) (*domain.Credentials, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("credentials id is empty: %w", domain.ErrConfigurationNotFound)
	}

	entry, ok := s.config.Credentials[id]
	if !ok {
		return nil, fmt.Errorf(`credentials "%s": %w`, id, domain.ErrConfigurationNotFound)
	}

	if len(entry.Scopes) > 0 && !lo.Contains(entry.Scopes, scope) {
		return nil, fmt.Errorf(`credentials "%s" from scope "%s": %w`, id, scope, domain.ErrCredentialsScope)
	}

	return &domain.Credentials{
		Username: entry.Username,
		Password: domain.Sensitive(entry.Password),
	}, nil
}

// ConnectionIDs returns the registered connection ids in ascending order
func (s *Store) ConnectionIDs() []string {
	ids := lo.Keys(s.config.Connections)
	sort.Strings(ids)
	return ids
}
