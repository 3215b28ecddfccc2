// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [ClientConfig] satisfies all client
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.UI.RefreshInterval <= 0 || cfg.UI.ToastDuration <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
