package service

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledes-client/internal/app"
	"github.com/MKhiriev/go-ledes-client/models"
)

var (
	pdfSuffix  = regexp.MustCompile(`(?i)\.pdf$`)
	ledeSuffix = regexp.MustCompile(`\.(xlsx|json)$`)
)

type clientRecordService struct {
	mu      sync.RWMutex
	records []models.ProcessedFileRecord
}

func NewClientRecordService() ClientRecordService {
	return &clientRecordService{}
}

func (s *clientRecordService) Build(req models.PipelineRequest, result models.PipelineResult, uploadedAt time.Time) (models.ProcessedFileRecord, bool) {
	uploaded := make([]models.UploadedFile, 0, len(result.FilesUploaded))
	for _, f := range result.FilesUploaded {
		if !f.IsResourceFork() {
			uploaded = append(uploaded, f)
		}
	}
	if len(uploaded) == 0 {
		return models.ProcessedFileRecord{}, false
	}

	ledeResults := result.LedeResults()
	report := models.LedeReport{Results: ledeResults}

	fileIDs := make([]int64, 0, len(uploaded))
	invoices := 0
	for _, f := range uploaded {
		fileIDs = append(fileIDs, f.FileID)
		if res, ok := report.ResultFor(f.FileID); ok && res.Succeeded() {
			invoices++
		}
	}

	var originalName string
	if len(req.Files) > 0 {
		originalName = req.Files[0].Name
	}
	isZip := len(req.Files) == 1 && req.Files[0].IsArchive()

	status := models.RecordSuccess
	if result.ProcessingError != "" {
		status = models.RecordError
	}

	return models.ProcessedFileRecord{
		ID:               result.RunID,
		UploadReference:  "#" + result.RunID,
		DateUploaded:     uploadedAt,
		InvoiceName:      displayName(req.Files, ledeResults, isZip),
		Invoices:         invoices,
		Status:           status,
		ProcessingError:  result.ProcessingError,
		FileIDs:          fileIDs,
		LedeResults:      ledeResults,
		UploadedFiles:    uploaded,
		OriginalFileName: originalName,
		IsZipUpload:      isZip,
	}, true
}

func (s *clientRecordService) Add(record models.ProcessedFileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.ProcessedFileRecord{record}, s.records...)
}

func (s *clientRecordService) List(filter string) []models.ProcessedFileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.ProcessedFileRecord, 0, len(s.records))
	for _, r := range s.records {
		if filter == "" || strings.Contains(strings.ToLower(r.UploadReference), filter) {
			out = append(out, r)
		}
	}

	return out
}

func (s *clientRecordService) OutputFiles(record models.ProcessedFileRecord) []models.OutputFile {
	report := models.LedeReport{Results: record.LedeResults}

	files := make([]models.OutputFile, 0, len(record.UploadedFiles))
	for _, uploaded := range record.UploadedFiles {
		if uploaded.IsResourceFork() {
			continue
		}

		res, found := report.ResultFor(uploaded.FileID)
		status := string(record.Status)
		if found && res.Status != "" {
			status = res.Status
		}

		files = append(files, models.OutputFile{
			Name:        OutputFileName(uploaded, res),
			DateCreated: record.DateUploaded,
			Status:      status,
		})
	}

	if len(files) == 0 {
		files = append(files, models.OutputFile{
			Name:        fmt.Sprintf("LEDES_%s.xlsx", record.InvoiceName),
			DateCreated: record.DateUploaded,
			Status:      string(record.Status),
		})
	}

	return files
}

// OutputFileName names the LEDES spreadsheet produced for uploaded. res may
// be the zero value when the file has no LEDES result.
func OutputFileName(uploaded models.UploadedFile, res models.LedeResult) string {
	if res.InvoiceName != "" {
		return pdfSuffix.ReplaceAllString(res.InvoiceName, "") + "_LEDES.xlsx"
	}
	if res.LedeXLSXFile != "" {
		if base := baseName(res.LedeXLSXFile); base != "" {
			return base
		}
	}
	return pdfSuffix.ReplaceAllString(uploaded.Filename, "") + "_LEDES.xlsx"
}

// InvoiceNameFromPath extracts the invoice name from a LEDES output path such
// as "/media/output/lede_Invoice_AU01.xlsx".
func InvoiceNameFromPath(p string) string {
	name := strings.TrimPrefix(baseName(p), "lede_")
	name = ledeSuffix.ReplaceAllString(name, "")
	if name == "" {
		return app.MsgUnknownInvoice
	}
	return name
}

func displayName(files []models.UploadFile, ledeResults []models.LedeResult, isZip bool) string {
	switch {
	case isZip:
		return strings.Replace(files[0].Name, ".zip", "", 1)
	case len(files) == 1:
		if len(ledeResults) > 0 && ledeResults[0].InvoiceName != "" {
			return pdfSuffix.ReplaceAllString(ledeResults[0].InvoiceName, "")
		}
		return strings.Replace(files[0].Name, ".pdf", "", 1)
	default:
		return fmt.Sprintf("%d files", len(files))
	}
}

func baseName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
