// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants every consumer relies on. Durations must not be negative; which
// fields are required is decided by the per-binary view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval < 0 || cfg.Workers.SessionRefreshLeeway < 0 || cfg.Workers.DownloadInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.DownloadDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ProjectID == "" || cfg.App.ServiceID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// isInMemoryDSN reports whether dsn opens a SQLite in-memory database, which
// would lose the session on exit.
func isInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
