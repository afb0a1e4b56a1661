package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF renders a structurally valid PDF with the given number of empty
// pages, computing the cross-reference offsets.
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))
	for i := 0; i < pages; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func minimalZIP(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("invoice.pdf")
	require.NoError(t, err)
	_, err = w.Write(minimalPDF(1))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestClientFileService_Inspect_PDF(t *testing.T) {
	svc := NewClientFileService(logger.Nop())
	content := minimalPDF(2)
	path := writeFile(t, "invoice.pdf", content)

	file, err := svc.Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.Path)
	assert.Equal(t, "invoice.pdf", file.Name)
	assert.Equal(t, int64(len(content)), file.Size)
	assert.Equal(t, models.MimeTypePDF, file.MimeType)
	assert.Equal(t, 2, file.Pages)
	assert.False(t, file.IsArchive())
}

func TestClientFileService_Inspect_UppercaseExtension(t *testing.T) {
	svc := NewClientFileService(logger.Nop())
	path := writeFile(t, "SCAN.PDF", minimalPDF(1))

	file, err := svc.Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, 1, file.Pages)
}

func TestClientFileService_Inspect_ZIP(t *testing.T) {
	svc := NewClientFileService(logger.Nop())
	path := writeFile(t, "batch.zip", minimalZIP(t))

	file, err := svc.Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, models.MimeTypeZIP, file.MimeType)
	assert.Zero(t, file.Pages)
	assert.True(t, file.IsArchive())
}

func TestClientFileService_Inspect_Rejects(t *testing.T) {
	svc := NewClientFileService(logger.Nop())

	tests := []struct {
		name    string
		file    string
		content []byte
		wantErr error
	}{
		{name: "wrong extension", file: "notes.txt", content: []byte("hello"), wantErr: ErrUnsupportedFileType},
		{name: "image renamed to pdf", file: "photo.pdf", content: []byte("\x89PNG\r\n\x1a\n0000"), wantErr: ErrUnsupportedFileType},
		{name: "text renamed to zip", file: "fake.zip", content: []byte("just text"), wantErr: ErrUnsupportedFileType},
		{name: "truncated pdf", file: "broken.pdf", content: []byte("%PDF-1.4\n1 0 obj\n<<"), wantErr: ErrUnreadablePDF},
		{name: "pdf without pages", file: "empty.pdf", content: minimalPDF(0), wantErr: ErrUnreadablePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := svc.Inspect(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientFileService_Inspect_Missing(t *testing.T) {
	svc := NewClientFileService(logger.Nop())

	_, err := svc.Inspect(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientFileService_Inspect_Directory(t *testing.T) {
	svc := NewClientFileService(logger.Nop())
	dir := filepath.Join(t.TempDir(), "folder.zip")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := svc.Inspect(dir)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
