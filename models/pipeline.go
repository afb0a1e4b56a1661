package models

// PipelineStage names one state of a conversion run. The zero value is
// PipelineIdle.
type PipelineStage string

// Pipeline run states. Uploading through GeneratingLedes are entered in that
// order on the happy path; Complete, CompleteWithError, NothingToProcess and
// Failed are terminal.
const (
	PipelineIdle               PipelineStage = ""
	PipelineUploading          PipelineStage = "uploading"
	PipelineRefreshing         PipelineStage = "refreshing"
	PipelineProcessingInvoices PipelineStage = "process_invoices"
	PipelineExtractingMetadata PipelineStage = "extract_metadata"
	PipelineGeneratingLedes    PipelineStage = "generate_lede"
	PipelineComplete           PipelineStage = "complete"
	PipelineCompleteWithError  PipelineStage = "complete_with_error"
	PipelineNothingToProcess   PipelineStage = "nothing_to_process"
	PipelineFailed             PipelineStage = "failed"
)

// IsTerminal reports whether no further progress follows the stage.
func (s PipelineStage) IsTerminal() bool {
	switch s {
	case PipelineComplete, PipelineCompleteWithError, PipelineNothingToProcess, PipelineFailed:
		return true
	default:
		return false
	}
}

// ProgressEvent is published before each network step of a run and once
// when the run reaches a terminal stage.
type ProgressEvent struct {
	Stage PipelineStage
	// Label is a human readable description, e.g. "Uploading files...".
	Label string
	// Attempt is the 1-based upload attempt the event belongs to.
	Attempt int
}

// PipelineRequest describes one upload batch.
type PipelineRequest struct {
	Files     []UploadFile
	ProjectID string
	ServiceID string
}

// PipelineResult is the merged outcome of a run. UploadResult is always
// populated once the upload step succeeded, even when a later step failed.
type PipelineResult struct {
	UploadResult

	// ProcessingResults is nil when no processing step ran to completion.
	ProcessingResults *ProcessingResults `json:"processing_results,omitempty"`

	// ProcessingError describes the failed processing step, if any.
	ProcessingError string `json:"processing_error,omitempty"`

	// State is the terminal stage of the run.
	State PipelineStage `json:"-"`
}

// LedeResults returns the per-file results of the LEDES generation step, or
// nil when the step did not complete.
func (r PipelineResult) LedeResults() []LedeResult {
	if r.ProcessingResults == nil {
		return nil
	}
	return r.ProcessingResults.GenerateLede.Results
}
