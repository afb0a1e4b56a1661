package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
)

type clientFileService struct {
	logger *logger.Logger
}

func NewClientFileService(logger *logger.Logger) ClientFileService {
	return &clientFileService{logger: logger}
}

func (s *clientFileService) Inspect(path string) (models.UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.UploadFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return models.UploadFile{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFileType, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".zip" {
		return models.UploadFile{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, info.Name())
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return models.UploadFile{}, fmt.Errorf("detect content type of %s: %w", path, err)
	}

	file := models.UploadFile{
		Path: path,
		Name: info.Name(),
		Size: info.Size(),
	}

	switch {
	case ext == ".pdf" && mtype.Is(models.MimeTypePDF):
		pages, err := countPages(path)
		if err != nil {
			return models.UploadFile{}, fmt.Errorf("%w: %s: %w", ErrUnreadablePDF, info.Name(), err)
		}
		file.MimeType = models.MimeTypePDF
		file.Pages = pages
	case ext == ".zip" && isZip(mtype):
		file.MimeType = models.MimeTypeZIP
	default:
		return models.UploadFile{}, fmt.Errorf("%w: %s looks like %s", ErrUnsupportedFileType, info.Name(), mtype.String())
	}

	s.logger.Debug().
		Str("func", "clientFileService.Inspect").
		Str("name", file.Name).
		Str("mime_type", file.MimeType).
		Int("pages", file.Pages).
		Msg("file accepted")

	return file, nil
}

// isZip also accepts formats built on top of ZIP.
func isZip(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(models.MimeTypeZIP) {
			return true
		}
	}
	return false
}

// countPages opens the PDF and reads its page tree. The parser panics on some
// malformed inputs; those are reported as errors.
func countPages(path string) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	pages = r.NumPage()
	if pages == 0 {
		return 0, fmt.Errorf("document has no pages")
	}
	return pages, nil
}
