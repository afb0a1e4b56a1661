package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFileStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := NewDownloadFileStorage(dir, logger.Nop())
	ctx := context.Background()

	t.Run("uses server name", func(t *testing.T) {
		path, err := s.Save(ctx, models.DownloadedFile{Filename: "invoice.pdf", Content: []byte("pdf")}, "original_file_1.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "invoice.pdf"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "pdf", string(data))
	})

	t.Run("falls back when name is empty", func(t *testing.T) {
		path, err := s.Save(ctx, models.DownloadedFile{Content: []byte("zip")}, "processed_files_7.zip")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "processed_files_7.zip"), path)
	})

	t.Run("does not overwrite", func(t *testing.T) {
		first, err := s.Save(ctx, models.DownloadedFile{Filename: "dup.xlsx", Content: []byte("1")}, "")
		require.NoError(t, err)
		second, err := s.Save(ctx, models.DownloadedFile{Filename: "dup.xlsx", Content: []byte("2")}, "")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "dup.xlsx"), first)
		assert.Equal(t, filepath.Join(dir, "dup (1).xlsx"), second)

		data, _ := os.ReadFile(first)
		assert.Equal(t, "1", string(data))
	})

	t.Run("strips directories", func(t *testing.T) {
		path, err := s.Save(ctx, models.DownloadedFile{Filename: "../../escape.zip", Content: []byte("x")}, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.zip"), path)
	})

	t.Run("no usable name", func(t *testing.T) {
		_, err := s.Save(ctx, models.DownloadedFile{Filename: ".."}, " ")
		assert.ErrorIs(t, err, ErrInvalidFileName)
	})
}

func TestDownloadFileStorage_Save_LogsWithoutContextLogger(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	s := NewDownloadFileStorage(dir, logger.NewLogger("test", &buf, zerolog.DebugLevel))

	path, err := s.Save(context.Background(), models.DownloadedFile{Filename: "report.xlsx", Content: []byte("x")}, "")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "file saved")
	assert.Contains(t, buf.String(), path)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "a.pdf", sanitizeFileName(" a.pdf "))
	assert.Equal(t, "c.zip", sanitizeFileName(`a\b\c.zip`))
	assert.Equal(t, "", sanitizeFileName("/"))
	assert.Equal(t, "", sanitizeFileName(""))
}
