// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the LEDES conversion backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every non-2xx response is returned as a [*ResponseError] whose Unwrap yields
// one of the sentinel values in errors.go, so callers can use [errors.Is] for
// status checks (e.g. [ErrUnauthorized] for 401) and [Message] for the text to
// show the user.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-ledes-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the LEDES backend. It holds no
// session state: every authenticated call receives the session explicitly and
// sends its access token, client id and client secret as headers.
type ServerAdapter interface {
	// Login exchanges credentials for a session at POST /auth/simple-login/.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RefreshToken exchanges a refresh token for a new access token at
	// POST /auth/web/token/refresh/.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)

	// Upload sends the batch as multipart/form-data to POST /core/upload/.
	// Files are streamed from disk under the repeated "file" field, followed
	// by project_id and service_id.
	Upload(ctx context.Context, session models.Session, req models.PipelineRequest) (models.UploadResult, error)

	// ProcessInvoices runs the first processing step for fileIDs.
	ProcessInvoices(ctx context.Context, session models.Session, fileIDs []int64) (json.RawMessage, error)

	// ExtractMetadata runs the second processing step for fileIDs.
	ExtractMetadata(ctx context.Context, session models.Session, fileIDs []int64) (json.RawMessage, error)

	// GenerateLedes runs the LEDES generation step and returns the per-file
	// results.
	GenerateLedes(ctx context.Context, session models.Session, fileIDs []int64) (models.LedeReport, error)

	// DownloadOriginal fetches the originally uploaded file.
	DownloadOriginal(ctx context.Context, session models.Session, fileID int64) (models.DownloadedFile, error)

	// DownloadLedes fetches the LEDES archive of a single file.
	DownloadLedes(ctx context.Context, session models.Session, fileID int64) (models.DownloadedFile, error)

	// DownloadLedesBundle fetches one archive with the LEDES output of all
	// fileIDs.
	DownloadLedesBundle(ctx context.Context, session models.Session, fileIDs []int64) (models.DownloadedFile, error)
}
