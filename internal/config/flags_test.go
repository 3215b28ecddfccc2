package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func parseTestFlags(t *testing.T, args ...string) *ClientConfig {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return parseFlags(fs, args)
}

// TestParseFlags_AllFlags verifies that every supported flag maps to its
// config field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseTestFlags(t,
		"-a", "http://localhost:4000",
		"-request-timeout", "25s",
		"-session-file", "/tmp/session.json",
		"-refresh-interval", "10s",
		"-toast-duration", "2s",
		"-c", "/tmp/config.json",
	)

	assert.Equal(t, "http://localhost:4000", cfg.Server.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.SessionFile)
	assert.Equal(t, 10*time.Second, cfg.UI.RefreshInterval)
	assert.Equal(t, 2*time.Second, cfg.UI.ToastDuration)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

// TestParseFlags_ConfigAlias verifies that -config is an alias for -c.
func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseTestFlags(t, "-config", "/etc/notes/config.json")
	assert.Equal(t, "/etc/notes/config.json", cfg.JSONFilePath)
}

// TestParseFlags_NoFlags verifies that omitted flags leave zero values, so
// the merge step can fill them from other sources.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseTestFlags(t)

	assert.Empty(t, cfg.Server.BaseURL)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Storage.SessionFile)
	assert.Zero(t, cfg.UI.RefreshInterval)
	assert.Zero(t, cfg.UI.ToastDuration)
	assert.Empty(t, cfg.JSONFilePath)
}
