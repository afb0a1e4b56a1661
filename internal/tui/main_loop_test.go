package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledes-client/internal/app"
	"github.com/MKhiriev/go-ledes-client/internal/mock"
	"github.com/MKhiriev/go-ledes-client/internal/service"
	"github.com/MKhiriev/go-ledes-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	pipeline *mock.MockClientPipelineService
	download *mock.MockClientDownloadService
	records  *mock.MockClientRecordService
	files    *mock.MockClientFileService
	job      *mock.MockClientSessionJob
}

func newTestMainLoop(t *testing.T, records ...models.ProcessedFileRecord) (mainLoopModel, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := testServices{
		pipeline: mock.NewMockClientPipelineService(ctrl),
		download: mock.NewMockClientDownloadService(ctrl),
		records:  mock.NewMockClientRecordService(ctrl),
		files:    mock.NewMockClientFileService(ctrl),
		job:      mock.NewMockClientSessionJob(ctrl),
	}
	s.records.EXPECT().List("").Return(records)

	services := &service.ClientServices{
		PipelineService: s.pipeline,
		DownloadService: s.download,
		RecordService:   s.records,
		FileService:     s.files,
		SessionJob:      s.job,
	}
	return newMainLoopModel(context.Background(), services, models.NewAppBuildInfo("1.0.0", "", "")), s
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func sampleRecord(id string) models.ProcessedFileRecord {
	return models.ProcessedFileRecord{
		ID:              id,
		UploadReference: "#" + id,
		DateUploaded:    time.Now().Add(-time.Hour),
		InvoiceName:     "INV-" + id,
		Invoices:        1,
		Status:          models.RecordSuccess,
		FileIDs:         []int64{11, 12},
	}
}

// ── staging files ────────────────────────────────────────────────────────────

func TestMainLoop_AddFile(t *testing.T) {
	m, s := newTestMainLoop(t)

	m, _ = update(t, m, keyPress("a"))
	require.True(t, m.adding)

	m.pathInput.SetValue(" /tmp/invoice.pdf ")
	m, cmd := update(t, m, keyPress("enter"))
	require.False(t, m.adding)
	require.NotNil(t, cmd)

	file := models.UploadFile{Path: "/tmp/invoice.pdf", Name: "invoice.pdf", Size: 2048, MimeType: models.MimeTypePDF, Pages: 2}
	s.files.EXPECT().Inspect("/tmp/invoice.pdf").Return(file, nil)

	msg := cmd()
	m, _ = update(t, m, msg)
	assert.Equal(t, []models.UploadFile{file}, m.staged)
	assert.Equal(t, "Added invoice.pdf", m.status)

	// the same path is not staged twice
	m, _ = update(t, m, fileInspectedMsg{file: file})
	assert.Len(t, m.staged, 1)
}

func TestMainLoop_AddFile_Rejected(t *testing.T) {
	m, _ := newTestMainLoop(t)

	err := fmt.Errorf("%w: looks like image/png", service.ErrUnsupportedFileType)
	m, _ = update(t, m, fileInspectedMsg{err: err})

	assert.Empty(t, m.staged)
	assert.Contains(t, m.errMsg, "only PDF and ZIP files are supported")
}

func TestMainLoop_AddFile_EmptyPath(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, _ = update(t, m, keyPress("a"))
	m, cmd := update(t, m, keyPress("enter"))

	assert.True(t, m.adding)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestMainLoop_ConvertWithoutFiles(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, cmd := update(t, m, keyPress("u"))

	assert.Nil(t, cmd)
	assert.False(t, m.running)
	assert.Equal(t, app.MsgNoFilesSelected, m.errMsg)
}

// ── conversion ───────────────────────────────────────────────────────────────

func TestMainLoop_Convert_StreamsProgressAndAddsRecord(t *testing.T) {
	m, s := newTestMainLoop(t)
	file := models.UploadFile{Path: "/tmp/a.pdf", Name: "a.pdf", MimeType: models.MimeTypePDF}
	m.staged = []models.UploadFile{file}

	m, cmd := update(t, m, keyPress("u"))
	require.True(t, m.running)
	require.NotNil(t, cmd)
	require.NotNil(t, m.progress)

	// drive the pipeline command directly
	req := models.PipelineRequest{Files: []models.UploadFile{file}}
	result := models.PipelineResult{
		UploadResult: models.UploadResult{RunID: "run-1", FilesUploaded: []models.UploadedFile{{FileID: 1, Filename: "a.pdf"}}},
		State:        models.PipelineComplete,
	}
	s.pipeline.EXPECT().
		UploadAndProcess(gomock.Any(), req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.PipelineRequest, ch chan<- models.ProgressEvent) (models.PipelineResult, error) {
			ch <- models.ProgressEvent{Stage: models.PipelineProcessingInvoices, Label: app.MsgProcessingInvoices, Attempt: 1}
			return result, nil
		})

	done := m.cmdConvert(req, m.progress)()
	ev := waitForProgress(m.progress)()
	m, next := update(t, m, ev)
	assert.Equal(t, app.MsgProcessingInvoices, m.stage.Label)
	require.NotNil(t, next)
	assert.Nil(t, next(), "the channel is closed once the pipeline returns")

	record := sampleRecord("run-1")
	s.records.EXPECT().Build(req, result, gomock.Any()).Return(record, true)
	s.records.EXPECT().Add(record)
	s.records.EXPECT().List("").Return([]models.ProcessedFileRecord{record})

	m, _ = update(t, m, done)
	assert.False(t, m.running)
	assert.Empty(t, m.staged)
	assert.Equal(t, []models.ProcessedFileRecord{record}, m.records)
	assert.Contains(t, m.status, app.MsgProcessingComplete)
	assert.Empty(t, m.errMsg)
}

func TestMainLoop_Convert_ProcessingErrorIsShown(t *testing.T) {
	m, s := newTestMainLoop(t)
	m.running = true

	req := models.PipelineRequest{Files: []models.UploadFile{{Name: "a.pdf"}}}
	result := models.PipelineResult{
		UploadResult:    models.UploadResult{RunID: "run-2", FilesUploaded: []models.UploadedFile{{FileID: 1, Filename: "a.pdf"}}},
		ProcessingError: "metadata service down",
		State:           models.PipelineCompleteWithError,
	}
	record := sampleRecord("run-2")
	record.Status = models.RecordError
	s.records.EXPECT().Build(req, result, gomock.Any()).Return(record, true)
	s.records.EXPECT().Add(record)
	s.records.EXPECT().List("").Return([]models.ProcessedFileRecord{record})

	m, _ = update(t, m, pipelineDoneMsg{req: req, result: result, uploadedAt: time.Now()})

	assert.Equal(t, app.MsgCompleteWithErrors, m.status)
	assert.Equal(t, "metadata service down", m.errMsg)
}

func TestMainLoop_Convert_NothingToProcess(t *testing.T) {
	m, s := newTestMainLoop(t)
	m.running = true
	m.staged = []models.UploadFile{{Name: "dup.pdf"}}

	req := models.PipelineRequest{Files: m.staged}
	result := models.PipelineResult{UploadResult: models.UploadResult{RunID: "run-3"}, State: models.PipelineNothingToProcess}
	s.records.EXPECT().Build(req, result, gomock.Any()).Return(models.ProcessedFileRecord{}, false)

	m, _ = update(t, m, pipelineDoneMsg{req: req, result: result})

	assert.Equal(t, app.MsgNothingToProcess, m.status)
	assert.Empty(t, m.staged)
}

func TestMainLoop_Convert_UploadFailureKeepsSelection(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.running = true
	m.staged = []models.UploadFile{{Name: "a.pdf"}}

	err := fmt.Errorf("%w: %w", service.ErrRequestFailed, errors.New("dial tcp 127.0.0.1:8000: connection refused"))
	m, cmd := update(t, m, pipelineDoneMsg{err: err})

	assert.Nil(t, cmd)
	assert.Len(t, m.staged, 1)
	assert.Equal(t, app.MsgPipelineFailed, m.status)
	assert.Equal(t, "No network connection or the server is unavailable", m.errMsg)
}

func TestMainLoop_SessionEndingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantNotice string
	}{
		{name: "missing credentials is silent", err: service.ErrMissingCredentials, wantNotice: ""},
		{name: "session expired", err: fmt.Errorf("%w: %w", service.ErrSessionExpired, errors.New("401")), wantNotice: app.MsgSessionExpired},
		{name: "auth exhausted", err: fmt.Errorf("%w: %w", service.ErrAuthExhausted, errors.New("401")), wantNotice: app.MsgAuthExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMainLoop(t)
			m.running = true

			m, cmd := update(t, m, pipelineDoneMsg{err: tt.err})

			assert.True(t, m.logout)
			assert.Equal(t, tt.wantNotice, m.notice)
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestMainLoop_BackgroundSessionExpiry(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, cmd := update(t, m, sessionExpiredMsg{err: fmt.Errorf("%w: refresh rejected", service.ErrSessionExpired)})

	assert.True(t, m.logout)
	assert.Equal(t, app.MsgSessionExpired, m.notice)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_Init_WatchesSessionExpiry(t *testing.T) {
	m, s := newTestMainLoop(t)

	expired := make(chan error, 1)
	s.job.EXPECT().Expired().Return((<-chan error)(expired))
	expired <- service.ErrSessionExpired

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, sessionExpiredMsg{err: service.ErrSessionExpired}, cmd())
}

func TestWaitForExpiry_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := waitForExpiry(ctx, make(chan error))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	assert.Nil(t, waitForExpiry(context.Background(), nil))
}

// ── downloads ────────────────────────────────────────────────────────────────

func TestMainLoop_DownloadOriginals(t *testing.T) {
	rec := sampleRecord("run-4")
	m, s := newTestMainLoop(t, rec)

	m, cmd := update(t, m, keyPress("o"))
	require.True(t, m.downloading)
	require.NotNil(t, cmd)

	s.download.EXPECT().DownloadOriginals(gomock.Any(), []int64{11, 12}).Return([]string{"/dl/a.pdf", "/dl/b.pdf"}, nil)

	msg := m.cmdDownloadOriginals(rec.FileIDs)()
	m, _ = update(t, m, msg)
	assert.False(t, m.downloading)
	assert.Equal(t, "Saved 2 files to /dl", m.status)
}

func TestMainLoop_DownloadResults_UsesArchiveFlag(t *testing.T) {
	rec := sampleRecord("run-5")
	rec.FileIDs = []int64{7}
	rec.IsZipUpload = true
	m, s := newTestMainLoop(t, rec)

	s.download.EXPECT().DownloadResults(gomock.Any(), []int64{7}, true).Return("/dl/processed.zip", nil)

	m, _ = update(t, m, keyPress("d"))
	require.True(t, m.downloading)

	m, _ = update(t, m, m.cmdDownloadResults(rec.FileIDs, rec.IsZipUpload)())
	assert.Equal(t, "Saved /dl/processed.zip", m.status)
}

func TestMainLoop_DownloadFailure_ReportsPartialProgress(t *testing.T) {
	m, _ := newTestMainLoop(t, sampleRecord("run-6"))
	m.downloading = true

	m, _ = update(t, m, downloadDoneMsg{paths: []string{"/dl/a.pdf"}, err: service.ErrRequestFailed})

	assert.False(t, m.downloading)
	assert.Equal(t, "Saved 1 file(s) before the error", m.status)
	assert.Contains(t, m.errMsg, "Download failed")
}

func TestMainLoop_Download_IgnoredWhileBusy(t *testing.T) {
	m, _ := newTestMainLoop(t, sampleRecord("run-7"))
	m.downloading = true

	m, cmd := update(t, m, keyPress("d"))
	assert.Nil(t, cmd)
	assert.Equal(t, "A download is already in progress", m.status)
}

// ── navigation ───────────────────────────────────────────────────────────────

func TestMainLoop_Filter(t *testing.T) {
	m, s := newTestMainLoop(t, sampleRecord("a1"), sampleRecord("b2"))

	m, _ = update(t, m, keyPress("/"))
	require.True(t, m.filtering)

	s.records.EXPECT().List("b").Return([]models.ProcessedFileRecord{sampleRecord("b2")})
	m, _ = update(t, m, keyPress("b"))
	assert.Equal(t, "b", m.filter)
	assert.Len(t, m.records, 1)

	m, _ = update(t, m, keyPress("enter"))
	assert.False(t, m.filtering)
	assert.Equal(t, "b", m.filter)

	s.records.EXPECT().List("").Return([]models.ProcessedFileRecord{sampleRecord("a1"), sampleRecord("b2")})
	m, _ = update(t, m, keyPress("esc"))
	assert.Empty(t, m.filter)
	assert.Len(t, m.records, 2)
}

func TestMainLoop_DetailView(t *testing.T) {
	rec := sampleRecord("run-8")
	rec.LedeResults = []models.LedeResult{{FileID: 11, Status: "success", LedeXLSXFile: "/media/lede_INV-77.xlsx"}}
	m, s := newTestMainLoop(t, rec)

	m, _ = update(t, m, keyPress("enter"))
	require.True(t, m.detail)

	s.records.EXPECT().OutputFiles(rec).Return([]models.OutputFile{{Name: "INV-77_LEDES.xlsx", Status: "success", DateCreated: rec.DateUploaded}})

	view := m.View()
	assert.Contains(t, view, "UPLOAD DETAILS")
	assert.Contains(t, view, "#run-8")
	assert.Contains(t, view, "INV-77_LEDES.xlsx")
	assert.Contains(t, view, "INV-77")

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.detail)
}

func TestMainLoop_Cursor(t *testing.T) {
	m, _ := newTestMainLoop(t, sampleRecord("1"), sampleRecord("2"))

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	assert.Equal(t, 1, m.idx)

	m, _ = update(t, m, keyPress("up"))
	m, _ = update(t, m, keyPress("up"))
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_QuitAndLogout(t *testing.T) {
	m, _ := newTestMainLoop(t)

	quit, cmd := update(t, m, keyPress("q"))
	assert.False(t, quit.logout)
	assert.True(t, isQuit(cmd))

	out, cmd := update(t, m, keyPress("l"))
	assert.True(t, out.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_LogoutWhileRunningAsksFirst(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.running = true

	m, cmd := update(t, m, keyPress("l"))
	require.NotNil(t, m.confirm)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Leave anyway?")

	m, cmd = update(t, m, keyPress("n"))
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)

	m, _ = update(t, m, keyPress("l"))
	m, cmd = update(t, m, keyPress("y"))
	assert.True(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_BuildInfoOverlay(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, _ = update(t, m, keyPress("i"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showBuildInfo)
}

func TestMainLoop_View_ListsRecords(t *testing.T) {
	m, _ := newTestMainLoop(t, sampleRecord("run-9"))

	view := m.View()
	assert.Contains(t, view, "LEDES CONVERTER")
	assert.Contains(t, view, "#run-9")
	assert.Contains(t, view, "INV-run-9")
	assert.Contains(t, view, "1 hour ago")
}

func TestSavedStatus(t *testing.T) {
	assert.Equal(t, "Nothing was downloaded", savedStatus(nil))
	assert.Equal(t, "Saved /dl/x.zip", savedStatus([]string{"/dl/x.zip"}))
	assert.Equal(t, "Saved 2 files to /dl", savedStatus([]string{"/dl/a", "/dl/b"}))
}
