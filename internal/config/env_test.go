// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"SERVER_ADDRESS":         "http://notes.example.com:3000",
		"SERVER_REQUEST_TIMEOUT": "20s",

		"STORAGE_SESSION_FILE": "/var/lib/notes/session.json",

		"UI_REFRESH_INTERVAL": "45s",
		"UI_TOAST_DURATION":   "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://notes.example.com:3000", cfg.Server.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/lib/notes/session.json", cfg.Storage.SessionFile)

	assert.Equal(t, 45*time.Second, cfg.UI.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.UI.ToastDuration)
}

func TestParseEnv_NoVarsSet(t *testing.T) {
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Server.BaseURL)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Storage.SessionFile)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
