package cli

import "os"

// Config holds CLI configuration
type Config struct {
	// ServerURL is the base URL of the tournament API
	ServerURL string
	// PlayerID is the acting principal's id
	PlayerID int64
	// Username is the acting principal's username
	Username string
	// DisplayName is the acting principal's display name
	DisplayName string
	// Output is the output format: text or json
	Output string
}

// DefaultConfig returns CLI defaults, honoring environment variables
func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
	}

	if url := os.Getenv("POOL_SERVER"); url != "" {
		cfg.ServerURL = url
	}
	if user := os.Getenv("POOL_USERNAME"); user != "" {
		cfg.Username = user
	}
	if name := os.Getenv("POOL_NAME"); name != "" {
		cfg.DisplayName = name
	}

	return cfg
}
