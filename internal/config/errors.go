package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid remote API settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty session file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates invalid interface timing settings
	// (for example, a zero refresh interval).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
