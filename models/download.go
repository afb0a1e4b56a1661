package models

// DownloadedFile is a binary artifact fetched from the backend together with
// the file name it should be saved under.
type DownloadedFile struct {
	// Filename comes from the Content-Disposition header; empty when the
	// server did not suggest one.
	Filename    string
	ContentType string
	Content     []byte
}
