package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ProjectID is the project_id form field of uploads.
	ProjectID string
	// ServiceID is the service_id form field of uploads.
	ServiceID string
	// LogLevel is the parsed zerolog level.
	LogLevel zerolog.Level
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientFiles contains local file-system settings for the client.
type ClientFiles struct {
	// DownloadDir is where downloaded originals and results are saved.
	DownloadDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds the download directory.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the session job runs.
	SessionCheckInterval time.Duration
	// SessionRefreshLeeway is the remaining token lifetime that triggers a
	// proactive refresh.
	SessionRefreshLeeway time.Duration
	// DownloadInterval paces multi-file downloads.
	DownloadInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name (usually os.Args[1:]).
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ProjectID: cfg.App.ProjectID,
			ServiceID: cfg.App.ServiceID,
			LogLevel:  level,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Files: ClientFiles{
				DownloadDir: cfg.Storage.Files.DownloadDir,
			},
		},
		Workers: ClientWorkers{
			SessionCheckInterval: cfg.Workers.SessionCheckInterval,
			SessionRefreshLeeway: cfg.Workers.SessionRefreshLeeway,
			DownloadInterval:     cfg.Workers.DownloadInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
