package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledes-client/internal/app"
	"github.com/MKhiriev/go-ledes-client/models"
)

var (
	ErrAuthFailed         = errors.New("authentication failed")
	ErrEmptyCredentials   = errors.New(app.MsgEmptyCredentials)
	ErrMissingCredentials = errors.New("authentication tokens missing")

	ErrNoRefreshToken = errors.New(app.MsgNoRefreshToken)
	ErrTokenExpired   = errors.New("access token expired")
	ErrSessionExpired = errors.New(app.MsgSessionExpired)
	ErrAuthExhausted  = errors.New(app.MsgAuthExhausted)

	ErrNoFilesSelected     = errors.New(app.MsgNoFilesSelected)
	ErrUnsupportedFileType = errors.New("only PDF and ZIP files are supported")
	ErrUnreadablePDF       = errors.New("PDF file cannot be read")

	ErrRequestFailed = errors.New("request failed")
)

// StepError reports which processing step failed after a successful upload.
type StepError struct {
	Stage models.PipelineStage
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Stage, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
