// Package config loads the connector's global configuration: the downloader CLI locations, the named
// host connections and the named credentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"go.uber.org/zap"

	"github.com/venafi/pds-downloader-connector/internal/app/domain"
)

const (
	// PathVariable names the environment variable holding the configuration file path
	PathVariable = "PDS_CONNECTOR_CONFIG"
	// DefaultPath is used when PathVariable is not set
	DefaultPath = "/etc/pds-downloader-connector/config.yaml"
	// EnvPrefix is the prefix of environment variables overriding configuration keys
	EnvPrefix = "PDS_CONNECTOR_"
)

// Config is the global configuration of the connector
type Config struct {
	Server      Server                       `koanf:"server"`
	Log         Log                          `koanf:"log"`
	CLI         CLI                          `koanf:"cli"`
	Connections map[string]domain.Connection `koanf:"connections"`
	Credentials map[string]CredentialsEntry  `koanf:"credentials"`
}

// Server contains the HTTP listener settings
type Server struct {
	Address        string `koanf:"address"`
	PayloadKeyPath string `koanf:"payloadKeyPath"`
}

// Log contains the logger settings
type Log struct {
	Level string `koanf:"level"`
}

// CLI contains the downloader CLI installation directory per target family
type CLI struct {
	UnixLocation    string `koanf:"unixLocation"`
	WindowsLocation string `koanf:"windowsLocation"`
}

// CredentialsEntry is a stored username/password pair. Scopes restricts which callers may use it;
// an empty list allows every caller.
type CredentialsEntry struct {
	Username string   `koanf:"username"`
	Password string   `koanf:"password"`
	Scopes   []string `koanf:"scopes"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.address":        ":8080",
		"server.payloadKeyPath": "/keys/payload-encryption-key.pem",
		"log.level":             "debug",
	}
}

// Load will read the configuration file named by PDS_CONNECTOR_CONFIG (or the default path) and apply
// environment overrides
func Load() (*Config, error) {
	path := os.Getenv(PathVariable)
	if len(path) == 0 {
		path = DefaultPath
	}

	return LoadFile(path)
}

// LoadFile will read the configuration from path and apply environment overrides. A missing file is
// not an error; the connector then relies on defaults and environment variables only.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load configuration defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(`failed to load configuration file "%s": %w`, path, err)
		}
		zap.L().Info("configuration file not found, using defaults and environment", zap.String("path", path))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.Connections == nil {
		cfg.Connections = map[string]domain.Connection{}
	}
	if cfg.Credentials == nil {
		cfg.Credentials = map[string]CredentialsEntry{}
	}

	zap.L().Info("configuration loaded",
		zap.String("path", path),
		zap.Int("connections", len(cfg.Connections)),
		zap.Int("credentials", len(cfg.Credentials)))

	return cfg, nil
}

// camelKeys restores the spelling of multi-word keys, environment variable names being upper case.
var camelKeys = map[string]string{
	"payloadkeypath":  "payloadKeyPath",
	"unixlocation":    "unixLocation",
	"windowslocation": "windowsLocation",
	"codepage":        "codePage",
}

// envKey maps PDS_CONNECTOR_SERVER__PAYLOADKEYPATH style names to configuration keys. A double
// underscore separates levels. Connection and credentials ids set this way are lower case.
func envKey(s string) string {
	segments := strings.Split(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__")
	for i, segment := range segments {
		if key, ok := camelKeys[segment]; ok {
			segments[i] = key
		}
	}
	return strings.Join(segments, ".")
}

// Location returns the downloader CLI installation directory for a Unix or other target
func (c *Config) Location(isUnix bool) string {
	if isUnix {
		return c.CLI.UnixLocation
	}
	return c.CLI.WindowsLocation
}
