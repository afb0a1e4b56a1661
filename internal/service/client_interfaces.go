package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledes-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService owns the session lifecycle: login, lookup of the stored
// session, token refresh and logout. The stored session is the only state it
// keeps, and it lives in the local session repository.
type ClientAuthService interface {
	// Login validates creds, authenticates against the backend and persists
	// the returned session, replacing any previous one.
	// Returns ErrEmptyCredentials without a network call when either field is
	// empty, and an error wrapping ErrAuthFailed when the backend rejects the
	// credentials.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Session returns the stored session. It performs no network I/O.
	// Returns ErrMissingCredentials when the access token, client id or
	// client secret is absent.
	Session(ctx context.Context) (models.Session, error)

	// Refresh exchanges the stored refresh token for a new access token and
	// persists it. Any failure clears the stored session and is reported as
	// ErrSessionExpired wrapping the cause.
	Refresh(ctx context.Context) error

	// Logout clears the stored session.
	Logout(ctx context.Context) error
}

// ClientPipelineService runs the upload-and-process pipeline for one batch.
type ClientPipelineService interface {
	// UploadAndProcess uploads req.Files and runs the three processing steps
	// on the uploaded file ids, strictly in order. Progress events are sent on
	// progress (which may be nil) before each network step and once more when
	// the run reaches a terminal stage. The service never closes progress.
	//
	// A 401 on the upload step triggers one token refresh and one full
	// restart. Failures of the processing steps do not fail the run: the
	// returned result carries ProcessingError instead.
	UploadAndProcess(ctx context.Context, req models.PipelineRequest, progress chan<- models.ProgressEvent) (models.PipelineResult, error)
}

// ClientDownloadService saves backend artifacts into the download directory.
type ClientDownloadService interface {
	// DownloadOriginal saves the originally uploaded file and returns its path.
	DownloadOriginal(ctx context.Context, fileID int64) (string, error)

	// DownloadOriginals saves every original one request at a time, paced by
	// the configured interval. It stops at the first failure and returns the
	// paths saved so far.
	DownloadOriginals(ctx context.Context, fileIDs []int64) ([]string, error)

	// DownloadResults saves the LEDES output of fileIDs. A single id of a
	// non-archive upload is fetched as a single-file archive, everything else
	// as one bundle.
	DownloadResults(ctx context.Context, fileIDs []int64, isArchiveUpload bool) (string, error)
}

// ClientRecordService keeps the in-memory list of processed upload batches
// shown in the results table.
type ClientRecordService interface {
	// Build derives the record of one finished run. ok is false when the
	// batch contains no usable files (all duplicates or resource forks), in
	// which case nothing should be listed.
	Build(req models.PipelineRequest, result models.PipelineResult, uploadedAt time.Time) (record models.ProcessedFileRecord, ok bool)

	// Add puts record at the top of the list.
	Add(record models.ProcessedFileRecord)

	// List returns the records newest first, keeping only those whose upload
	// reference contains filter, ignoring case. An empty filter keeps all.
	List(filter string) []models.ProcessedFileRecord

	// OutputFiles lists the LEDES artifacts of record for the details view.
	OutputFiles(record models.ProcessedFileRecord) []models.OutputFile
}

// ClientFileService runs local preflight checks on files picked for upload.
type ClientFileService interface {
	// Inspect accepts PDF and ZIP files only. The content type is sniffed,
	// not guessed from the extension, and PDFs are opened to count pages.
	Inspect(path string) (models.UploadFile, error)
}

// ClientSessionJob is a background worker that refreshes the access token
// before it runs out.
type ClientSessionJob interface {
	// Start launches the background goroutine. Every interval it checks the
	// stored access token and refreshes it when it expires within leeway.
	// interval defaults to 2 minutes if zero or negative. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval, leeway time.Duration)

	// Expired delivers the error of a failed background refresh. After a
	// failure the stored session is gone and the user has to log in again.
	Expired() <-chan error

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
