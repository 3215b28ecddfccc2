package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a notes server base URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-session-file durable session file path
//	-refresh-interval public view refresh interval (e.g., "30s")
//	-toast-duration toast auto-dismiss duration (e.g., "3s")
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *ClientConfig {
	var baseURL string
	var requestTimeout time.Duration
	var sessionFile string
	var refreshInterval time.Duration
	var toastDuration time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "Notes server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&sessionFile, "session-file", "", "Durable session file path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Public view refresh interval (e.g., 30s)")
	fs.DurationVar(&toastDuration, "toast-duration", 0, "Toast auto-dismiss duration (e.g., 3s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &ClientConfig{
		Server: Server{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionFile: sessionFile,
		},
		UI: UI{
			RefreshInterval: refreshInterval,
			ToastDuration:   toastDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
