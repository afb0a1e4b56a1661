package models

import (
	"encoding/json"
	"strings"
)

// Supported MIME types of locally selected files.
const (
	MimeTypePDF = "application/pdf"
	MimeTypeZIP = "application/zip"
)

// UploadFile is one locally selected file that passed preflight checks and
// is ready to be sent in the multipart upload.
type UploadFile struct {
	// Path is the absolute or relative path on the local file system.
	Path string
	// Name is the file name sent to the backend (base name of Path).
	Name string
	// Size is the file size in bytes.
	Size int64
	// MimeType is the sniffed content type, MimeTypePDF or MimeTypeZIP.
	MimeType string
	// Pages is the PDF page count; zero for archives.
	Pages int
}

// IsArchive reports whether the file is a ZIP archive.
func (f UploadFile) IsArchive() bool {
	return f.MimeType == MimeTypeZIP || strings.HasSuffix(strings.ToLower(f.Name), ".zip")
}

// UploadedFile is the backend's record of one accepted file. FileID is the
// join key used by every later pipeline step.
type UploadedFile struct {
	FileID   int64  `json:"file_id"`
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
	Message  string `json:"message,omitempty"`
}

// IsResourceFork reports whether the file is a macOS "._" metadata entry
// extracted from an archive. Such entries never produce invoices.
func (f UploadedFile) IsResourceFork() bool {
	return strings.HasPrefix(f.Filename, "._")
}

// UploadResult is the response of the upload step. Files already known to
// the backend are omitted from FilesUploaded.
type UploadResult struct {
	Message       string            `json:"message,omitempty"`
	RunID         string            `json:"run_id"`
	UserID        string            `json:"user_id"`
	FilesUploaded []UploadedFile    `json:"files_uploaded"`
	FilesSkipped  []json.RawMessage `json:"files_skipped"`
}

// FileIDs returns the identifiers of all uploaded files in response order.
func (u UploadResult) FileIDs() []int64 {
	ids := make([]int64, 0, len(u.FilesUploaded))
	for _, f := range u.FilesUploaded {
		ids = append(ids, f.FileID)
	}
	return ids
}
