package tui

import (
	"time"

	"github.com/MKhiriev/go-ledes-client/models"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when set,
// is delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err     error
	Email   string
	Session models.Session
}

type progressMsg models.ProgressEvent

type pipelineDoneMsg struct {
	req        models.PipelineRequest
	result     models.PipelineResult
	uploadedAt time.Time
	err        error
}

type fileInspectedMsg struct {
	file models.UploadFile
	err  error
}

type downloadDoneMsg struct {
	paths []string
	err   error
}

type sessionExpiredMsg struct {
	err error
}

type clearStatusMsg struct{}
