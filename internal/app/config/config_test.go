package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

const configYaml = `
server:
  address: ":9090"
cli:
  unixLocation: /opt/topaz/cli
  windowsLocation: 'C:\Program Files\Topaz\CLI'
connections:
  cw01:
    host: cw01.example.com
    port: 16196
    codePage: 1047
    timeout: 60
    description: development LPAR
  cw09:
    host: cw09.example.com
    port: "16196"
    codePage: "37"
    timeout: "0"
credentials:
  tso-user:
    username: XDEVREG
    password: secret
  release:
    username: XRELEASE
    password: release-secret
    scopes:
      - release-pipeline
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, configYaml))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, ":9090", cfg.Server.Address)
		require.Equal(t, "/keys/payload-encryption-key.pem", cfg.Server.PayloadKeyPath)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "/opt/topaz/cli", cfg.Location(true))
		require.Equal(t, `C:\Program Files\Topaz\CLI`, cfg.Location(false))

		require.Len(t, cfg.Connections, 2)
		require.Equal(t, domain.Connection{
			Host:        "cw01.example.com",
			Port:        "16196",
			CodePage:    "1047",
			Timeout:     "60",
			Description: "development LPAR",
		}, cfg.Connections["cw01"])

		require.Len(t, cfg.Credentials, 2)
		require.Equal(t, []string{"release-pipeline"}, cfg.Credentials["release"].Scopes)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.Server.Address)
		require.NotNil(t, cfg.Connections)
		require.NotNil(t, cfg.Credentials)
	})

	t.Run("invalid file", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "server: [unterminated"))
		require.Error(t, err)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PDS_CONNECTOR_SERVER__ADDRESS", ":7070")
		t.Setenv("PDS_CONNECTOR_SERVER__PAYLOADKEYPATH", "/run/keys/key.pem")
		t.Setenv("PDS_CONNECTOR_CLI__UNIXLOCATION", "/usr/local/topaz")
		t.Setenv("PDS_CONNECTOR_CONNECTIONS__CW01__TIMEOUT", "120")

		cfg, err := LoadFile(writeConfig(t, configYaml))
		require.NoError(t, err)
		require.Equal(t, ":7070", cfg.Server.Address)
		require.Equal(t, "/run/keys/key.pem", cfg.Server.PayloadKeyPath)
		require.Equal(t, "/usr/local/topaz", cfg.Location(true))
		require.Equal(t, "120", cfg.Connections["cw01"].Timeout)
		require.Equal(t, "cw01.example.com", cfg.Connections["cw01"].Host)
	})

	t.Run("load from variable", func(t *testing.T) {
		t.Setenv(PathVariable, writeConfig(t, configYaml))

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.Server.Address)
	})
}

func TestEnvKey(t *testing.T) {
	require.Equal(t, "server.address", envKey("PDS_CONNECTOR_SERVER__ADDRESS"))
	require.Equal(t, "server.payloadKeyPath", envKey("PDS_CONNECTOR_SERVER__PAYLOADKEYPATH"))
	require.Equal(t, "connections.cw01.codePage", envKey("PDS_CONNECTOR_CONNECTIONS__CW01__CODEPAGE"))
	require.Equal(t, "connections.my_lpar.host", envKey("PDS_CONNECTOR_CONNECTIONS__MY_LPAR__HOST"))
}

func TestStore(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, configYaml))
	require.NoError(t, err)

	store := NewStore(cfg)

	t.Run("connection", func(t *testing.T) {
		connection, err := store.ResolveConnection("cw09")
		require.NoError(t, err)
		require.Equal(t, "cw09.example.com", connection.Host)
		require.Equal(t, "37", connection.CodePage)
	})

	t.Run("unknown connection", func(t *testing.T) {
		_, err := store.ResolveConnection("cw99")
		require.ErrorIs(t, err, domain.ErrConfigurationNotFound)
		require.Contains(t, err.Error(), "cw99")

		_, err = store.ResolveConnection("")
		require.ErrorIs(t, err, domain.ErrConfigurationNotFound)
	})

	t.Run("credentials", func(t *testing.T) {
		credentials, err := store.ResolveCredentials("tso-user", "any-job")
		require.NoError(t, err)
		require.Equal(t, "XDEVREG", credentials.Username)
		require.Equal(t, "secret", credentials.Password.Reveal())
	})

	t.Run("unknown credentials", func(t *testing.T) {
		_, err := store.ResolveCredentials("nobody", "any-job")
		require.ErrorIs(t, err, domain.ErrConfigurationNotFound)
	})

	t.Run("scoped credentials", func(t *testing.T) {
		credentials, err := store.ResolveCredentials("release", "release-pipeline")
		require.NoError(t, err)
		require.Equal(t, "XRELEASE", credentials.Username)

		_, err = store.ResolveCredentials("release", "feature-pipeline")
		require.True(t, errors.Is(err, domain.ErrCredentialsScope))
		require.NotContains(t, err.Error(), "release-secret")
	})

	t.Run("connection ids", func(t *testing.T) {
		require.Equal(t, []string{"cw01", "cw09"}, store.ConnectionIDs())
		require.Equal(t, "/opt/topaz/cli", store.Location(true))
	})
}
