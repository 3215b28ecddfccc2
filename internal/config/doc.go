// Package config assembles the client configuration from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults, merged in that priority order.
package config
