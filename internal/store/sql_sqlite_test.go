package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledes-client/internal/config"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientStorages_SessionRoundTrip exercises the real SQLite driver and
// the embedded migrations end to end.
func TestClientStorages_SessionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(dir, "nested", "client.db")},
		Files: config.ClientFiles{DownloadDir: filepath.Join(dir, "downloads")},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.SessionRepository

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)

	require.NoError(t, repo.SaveSession(ctx, models.Session{AccessToken: "a1", RefreshToken: "r1", ClientID: "c1", ClientSecret: "s1"}))
	require.NoError(t, repo.SaveSession(ctx, models.Session{AccessToken: "a2", RefreshToken: "r2", ClientID: "c2", ClientSecret: "s2"}))
	require.NoError(t, repo.SaveAccessToken(ctx, "a3"))

	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccessToken: "a3", RefreshToken: "r2", ClientID: "c2", ClientSecret: "s2"}, got)

	require.NoError(t, repo.ClearSession(ctx))
	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)
}

func TestClientStorages_SessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
		Files: config.ClientFiles{DownloadDir: t.TempDir()},
	}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionRepository.SaveSession(ctx, models.Session{AccessToken: "a", ClientID: "c", ClientSecret: "s"}))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.SessionRepository.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
}
