package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBaseURL         = "http://localhost:3000"
	defaultRequestTimeout  = 15 * time.Second
	defaultRefreshInterval = 30 * time.Second
	defaultToastDuration   = 3 * time.Second
)

// defaultConfig returns the built-in fallback configuration. It is merged
// last, so it only fills fields no other source provided.
func defaultConfig() *ClientConfig {
	return &ClientConfig{
		Server: Server{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			SessionFile: defaultSessionFile(),
		},
		UI: UI{
			RefreshInterval: defaultRefreshInterval,
			ToastDuration:   defaultToastDuration,
		},
	}
}

// defaultSessionFile resolves the session file path under the user config
// directory, falling back to a dotfile in the working directory.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".notes-client-session.json"
	}
	return filepath.Join(dir, "notes-client", "session.json")
}
