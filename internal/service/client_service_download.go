package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-ledes-client/internal/adapter"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/store"
	"github.com/MKhiriev/go-ledes-client/internal/utils"
	"github.com/MKhiriev/go-ledes-client/models"
)

const defaultDownloadInterval = 500 * time.Millisecond

type clientDownloadService struct {
	auth    ClientAuthService
	adapter adapter.ServerAdapter
	files   store.DownloadStorage
	limiter *rate.Limiter
	logger  *logger.Logger
}

// NewClientDownloadService creates a download service that saves artifacts
// through the storages' DownloadStorage. Consecutive requests of a
// multi-file download are spaced at least interval apart.
func NewClientDownloadService(auth ClientAuthService, localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, interval time.Duration, logger *logger.Logger) ClientDownloadService {
	if interval <= 0 {
		interval = defaultDownloadInterval
	}

	return &clientDownloadService{
		auth:    auth,
		adapter: serverAdapter,
		files:   localStore.DownloadStorage,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (d *clientDownloadService) DownloadOriginal(ctx context.Context, fileID int64) (string, error) {
	session, err := d.auth.Session(ctx)
	if err != nil {
		return "", err
	}

	return d.downloadOriginal(ctx, session, fileID)
}

func (d *clientDownloadService) DownloadOriginals(ctx context.Context, fileIDs []int64) ([]string, error) {
	session, err := d.auth.Session(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(fileIDs))
	for _, fileID := range fileIDs {
		if err = d.limiter.Wait(ctx); err != nil {
			return paths, err
		}

		path, err := d.downloadOriginal(ctx, session, fileID)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (d *clientDownloadService) DownloadResults(ctx context.Context, fileIDs []int64, isArchiveUpload bool) (string, error) {
	if len(fileIDs) == 0 {
		return "", ErrNoFilesSelected
	}

	session, err := d.auth.Session(ctx)
	if err != nil {
		return "", err
	}

	var file models.DownloadedFile
	if len(fileIDs) == 1 && !isArchiveUpload {
		file, err = d.adapter.DownloadLedes(ctx, session, fileIDs[0])
	} else {
		file, err = d.adapter.DownloadLedesBundle(ctx, session, fileIDs)
	}
	if err != nil {
		return "", mapAdapterError(err)
	}

	return d.save(ctx, file, fmt.Sprintf("processed_files_%s.zip", utils.JoinFileIDsForName(fileIDs)))
}

func (d *clientDownloadService) downloadOriginal(ctx context.Context, session models.Session, fileID int64) (string, error) {
	file, err := d.adapter.DownloadOriginal(ctx, session, fileID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return d.save(ctx, file, fmt.Sprintf("original_file_%d.pdf", fileID))
}

func (d *clientDownloadService) save(ctx context.Context, file models.DownloadedFile, fallbackName string) (string, error) {
	path, err := d.files.Save(ctx, file, fallbackName)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", fallbackName, err)
	}

	d.logger.Info().
		Str("func", "clientDownloadService.save").
		Str("path", path).
		Int("bytes", len(file.Content)).
		Msg("file downloaded")

	return path, nil
}
