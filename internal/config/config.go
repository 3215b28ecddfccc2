// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// ClientConfig is the top-level configuration for the notes terminal client.
// It is populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// Server holds remote notes API connection settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds durable client-side state settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// UI holds view refresh and notification timing settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds connection settings for the remote notes API.
type Server struct {
	// BaseURL is the base URL of the notes service
	// (e.g. "http://localhost:3000").
	// Env: SERVER_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds durable client-side storage settings.
type Storage struct {
	// SessionFile is the path of the file that persists the auth token and
	// username across restarts.
	// Env: STORAGE_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// UI holds timing settings for the terminal interface.
type UI struct {
	// RefreshInterval is how often the public notes view re-fetches while
	// it is the active view (e.g. "30s").
	// Env: UI_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// ToastDuration is how long a notification toast stays on screen
	// before auto-dismissing (e.g. "3s").
	// Env: UI_TOAST_DURATION
	ToastDuration time.Duration `env:"TOAST_DURATION"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
