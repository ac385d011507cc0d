package config

import (
	"errors"
	"flag"
	"net/url"
	"time"
)

// BaseURL holds a validated backend root URL.
// It implements the flag.Value interface.
type BaseURL struct {
	raw string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b backend base URL, e.g. http://localhost:8000
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-token-file session token file path
//	-notification-interval unread notification poll interval
//	-dashboard-interval dashboard refresh interval
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendURL BaseURL
	var requestTimeout time.Duration
	var tokenFile string
	var notificationInterval time.Duration
	var dashboardInterval time.Duration
	var jsonConfigPath string

	flag.Var(&backendURL, "b", "Backend base URL, e.g. http://localhost:8000")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tokenFile, "token-file", "", "Session token file path")
	flag.DurationVar(&notificationInterval, "notification-interval", 0, "Notification poll interval (e.g., 30s)")
	flag.DurationVar(&dashboardInterval, "dashboard-interval", 0, "Dashboard refresh interval (e.g., 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{},
		Backend: Backend{
			BaseURL:        backendURL.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			TokenFile: tokenFile,
		},
		Workers: Workers{
			NotificationInterval: notificationInterval,
			DashboardInterval:    dashboardInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the raw URL string, or "" when unset.
func (u *BaseURL) String() string {
	return u.raw
}

// Set parses and validates the input string as an absolute http(s) URL.
// Returns an error if the scheme is missing or unsupported.
func (u *BaseURL) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("backend URL must use http or https scheme")
	}

	if parsed.Host == "" {
		return errors.New("backend URL must include a host")
	}

	u.raw = s
	return nil
}
