package domain

// Credentials represents a username/password pair resolved for a single download.
type Credentials struct {
	Username string
	Password Sensitive
}
