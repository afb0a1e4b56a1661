// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the LEDES
// client. It aggregates all sub-configurations and is populated by merging
// built-in defaults, an optional JSON or TOML file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings sent with every upload and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database and download directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the background session job and of paced
	// downloads.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// The format is chosen by extension (.toml, otherwise JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level values attached to backend requests.
type App struct {
	// ProjectID is sent as the project_id multipart field of every upload.
	// Env: APP_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// ServiceID is sent as the service_id multipart field of every upload.
	// Env: APP_SERVICE_ID
	ServiceID string `env:"SERVICE_ID"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all local storage used by the client.
type Storage struct {
	// DB holds the SQLite key-value session store settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directory downloaded files are written to.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local session database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "ledes_client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for downloaded originals and results.
type Files struct {
	// DownloadDir is created on demand.
	// Env: STORAGE_FILES_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Adapter holds settings of the outbound REST adapter.
type Adapter struct {
	// HTTPAddress is the backend base URL, e.g. "https://api.example.com".
	// A bare "host:port" is accepted and gets the http scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "2m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background and paced work.
type Workers struct {
	// SessionCheckInterval is how often the session job inspects the access
	// token. Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`

	// SessionRefreshLeeway is how close to expiry a token must be before the
	// session job refreshes it. Env: WORKERS_SESSION_REFRESH_LEEWAY
	SessionRefreshLeeway time.Duration `env:"SESSION_REFRESH_LEEWAY"`

	// DownloadInterval is the pause between consecutive requests of a
	// multi-file download. Env: WORKERS_DOWNLOAD_INTERVAL
	DownloadInterval time.Duration `env:"DOWNLOAD_INTERVAL"`
}

// Defaults used when no source sets a value.
const (
	DefaultProjectID            = "iag"
	DefaultServiceID            = "ledes"
	DefaultLogLevel             = "info"
	DefaultDSN                  = "ledes_client.db"
	DefaultDownloadDir          = "downloads"
	DefaultRequestTimeout       = 2 * time.Minute
	DefaultSessionCheckInterval = time.Minute
	DefaultSessionRefreshLeeway = 30 * time.Second
	DefaultDownloadInterval     = 500 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ProjectID: DefaultProjectID,
			ServiceID: DefaultServiceID,
			LogLevel:  DefaultLogLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{DownloadDir: DefaultDownloadDir},
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{
			SessionCheckInterval: DefaultSessionCheckInterval,
			SessionRefreshLeeway: DefaultSessionRefreshLeeway,
			DownloadInterval:     DefaultDownloadInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Later sources override non-zero
// fields of earlier ones:
//  1. Built-in defaults
//  2. JSON or TOML file (path resolved from flags, then env)
//  3. Environment variables
//  4. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
