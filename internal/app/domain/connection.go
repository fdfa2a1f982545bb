// Package domain contains shared definitions.
package domain

// Connection represents a named host connection from the global configuration.
// Values are kept as strings because they are forwarded to the downloader CLI verbatim.
type Connection struct {
	Host        string `json:"host" koanf:"host"`
	Port        string `json:"port" koanf:"port"`
	CodePage    string `json:"codePage" koanf:"codePage"`
	Timeout     string `json:"timeout" koanf:"timeout"`
	Description string `json:"description,omitempty" koanf:"description"`
}
