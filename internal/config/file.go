package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig is the on-disk shape of a config file. The same keys
// are used for JSON and TOML.
type StructuredFileConfig struct {
	App struct {
		ProjectID string `json:"project_id" toml:"project_id"`
		ServiceID string `json:"service_id" toml:"service_id"`
		LogLevel  string `json:"log_level" toml:"log_level"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`

		Files struct {
			DownloadDir string `json:"download_dir" toml:"download_dir"`
		} `json:"files,omitempty" toml:"files"`
	} `json:"storage,omitempty" toml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval" toml:"session_check_interval"`
		SessionRefreshLeeway Duration `json:"session_refresh_leeway" toml:"session_refresh_leeway"`
		DownloadInterval     Duration `json:"download_interval" toml:"download_interval"`
	} `json:"workers,omitempty" toml:"workers"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ProjectID: f.App.ProjectID,
			ServiceID: f.App.ServiceID,
			LogLevel:  f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Files: Files{
				DownloadDir: f.Storage.Files.DownloadDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionCheckInterval: time.Duration(f.Workers.SessionCheckInterval),
			SessionRefreshLeeway: time.Duration(f.Workers.SessionRefreshLeeway),
			DownloadInterval:     time.Duration(f.Workers.DownloadInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes strings like "1h"
// or "500ms" from JSON and TOML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText is used by go-toml.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
