package models

import "time"

// RecordStatus is the display status of a processed upload batch.
type RecordStatus string

const (
	RecordSuccess RecordStatus = "Success"
	RecordError   RecordStatus = "Error"
)

// ProcessedFileRecord is one row of the results table: an upload batch
// joined with its processing results. Records are held in memory only.
type ProcessedFileRecord struct {
	// ID is the backend run id of the batch.
	ID string
	// UploadReference is the user facing reference, "#" + run id.
	UploadReference string
	DateUploaded    time.Time
	// InvoiceName is the display name derived from the batch shape.
	InvoiceName string
	// Invoices counts uploaded files whose LEDES generation succeeded.
	Invoices int
	Status   RecordStatus
	// ProcessingError is set when a processing step failed after upload.
	ProcessingError string

	FileIDs          []int64
	LedeResults      []LedeResult
	UploadedFiles    []UploadedFile
	OriginalFileName string
	IsZipUpload      bool
}

// OutputFile is one LEDES artifact listed in the details view.
type OutputFile struct {
	Name        string
	DateCreated time.Time
	Status      string
}
