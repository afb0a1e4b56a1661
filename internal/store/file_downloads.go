package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
)

// maxNameCollisions bounds the " (n)" suffix search.
const maxNameCollisions = 1000

// downloadFileStorage is the file-system implementation of
// [DownloadStorage]. Files are written into dir, which is created on the
// first save.
type downloadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDownloadFileStorage constructs a [DownloadStorage] writing into dir.
func NewDownloadFileStorage(dir string, logger *logger.Logger) DownloadStorage {
	return &downloadFileStorage{dir: dir, logger: logger}
}

// Save implements [DownloadStorage]. The name is reduced to its base name so
// a server supplied name cannot escape dir.
func (s *downloadFileStorage) Save(ctx context.Context, file models.DownloadedFile, fallbackName string) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	name := sanitizeFileName(file.Filename)
	if name == "" {
		name = sanitizeFileName(fallbackName)
	}
	if name == "" {
		return "", ErrInvalidFileName
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	f, path, err := s.createUnique(name)
	if err != nil {
		log.Err(err).Str("func", "*downloadFileStorage.Save").Msg("error creating download file")
		return "", err
	}

	if _, err = f.Write(file.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write download file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close download file: %w", err)
	}

	log.Debug().Str("func", "*downloadFileStorage.Save").Str("path", path).Int("bytes", len(file.Content)).Msg("file saved")
	return path, nil
}

// createUnique opens dir/name exclusively, trying "base (1).ext",
// "base (2).ext", ... when the name is taken.
func (s *downloadFileStorage) createUnique(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for n := 0; n < maxNameCollisions; n++ {
		candidate := name
		if n > 0 {
			candidate = base + " (" + strconv.Itoa(n) + ")" + ext
		}

		path := filepath.Join(s.dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create download file: %w", err)
		}
	}

	return nil, "", fmt.Errorf("create download file: too many files named %q", name)
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}

	name = filepath.Base(filepath.FromSlash(name))
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}
