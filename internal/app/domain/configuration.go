package domain

// PdsConfiguration selects the connection, credentials and members for a PDS download
type PdsConfiguration struct {
	ConnectionID  string `json:"connectionId"`
	CredentialsID string `json:"credentialsId"`
	FilterPattern string `json:"filterPattern"`
	FileExtension string `json:"fileExtension"`
}

// DownloadRequest represents a single invocation of the downloader CLI
type DownloadRequest struct {
	Configuration PdsConfiguration
	// Workspace is the target folder on the execution target
	Workspace string
	// Scope identifies the calling job; credentials may be restricted to a set of scopes
	Scope string
	// Environment holds KEY=VALUE pairs layered over the connector's environment
	Environment []string
}
