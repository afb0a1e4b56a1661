package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. "https://api.example.com" or "localhost:8000")
//	-d database DSN (SQLite file path)
//	-o download directory
//	-c/-config JSON or TOML file path with configs
//	-project project_id sent with uploads
//	-service service_id sent with uploads
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-check-interval session job tick (e.g., "1m")
//	-session-refresh-leeway proactive refresh window (e.g., "30s")
//	-download-interval pause between paced downloads (e.g., "500ms")
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddress          string
		databaseDSN          string
		downloadDir          string
		configPath           string
		projectID            string
		serviceID            string
		logLevel             string
		requestTimeout       time.Duration
		sessionCheckInterval time.Duration
		sessionRefreshLeeway time.Duration
		downloadInterval     time.Duration
	)

	fs := flag.NewFlagSet("ledes-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&httpAddress, "a", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&projectID, "project", "", "Project id sent with uploads")
	fs.StringVar(&serviceID, "service", "", "Service id sent with uploads")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session check interval (e.g., 1m)")
	fs.DurationVar(&sessionRefreshLeeway, "session-refresh-leeway", 0, "Refresh tokens expiring within this window")
	fs.DurationVar(&downloadInterval, "download-interval", 0, "Pause between paced downloads (e.g., 500ms)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ProjectID: projectID,
			ServiceID: serviceID,
			LogLevel:  logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DownloadDir: downloadDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
			SessionRefreshLeeway: sessionRefreshLeeway,
			DownloadInterval:     downloadInterval,
		},
		FilePath: configPath,
	}, nil
}
