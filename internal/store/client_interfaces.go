package store

import (
	"context"

	"github.com/MKhiriev/go-ledes-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the local key-value store of the session credentials.
// Only access token, refresh token, client id and client secret are kept.
type SessionRepository interface {
	// SaveSession replaces all stored session values with those of session.
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns whatever values are stored. Missing keys yield empty
	// fields; deciding whether the result is usable is up to the caller.
	GetSession(ctx context.Context) (models.Session, error)
	// SaveAccessToken replaces only the access token.
	SaveAccessToken(ctx context.Context, accessToken string) error
	// ClearSession removes every stored session value.
	ClearSession(ctx context.Context) error
}

// DownloadStorage writes downloaded artifacts to the local file system.
type DownloadStorage interface {
	// Save writes file under its Filename (or fallbackName when empty) and
	// returns the path it was written to. Existing files are never
	// overwritten; a " (n)" suffix is added instead.
	Save(ctx context.Context, file models.DownloadedFile, fallbackName string) (string, error)
}
