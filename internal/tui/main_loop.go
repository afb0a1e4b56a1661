package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledes-client/internal/app"
	"github.com/MKhiriev/go-ledes-client/internal/service"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const (
	statusTTL      = 3 * time.Second
	progressBuffer = 8
)

const mainHotKeys = "a: add file │ x: clear │ u: convert │ /: filter │ enter: details │ o: originals │ d: LEDES │ c: copy ref │ i: about │ l: logout │ q: quit"

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	records []models.ProcessedFileRecord
	idx     int
	staged  []models.UploadFile

	adding    bool
	pathInput textinput.Model

	filtering   bool
	filterInput textinput.Model
	filter      string

	detail        bool
	showBuildInfo bool
	confirm       *confirmModel

	running     bool
	downloading bool
	progress    chan models.ProgressEvent
	stage       models.ProgressEvent
	spinner     spinner.Model

	status string
	errMsg string

	logout bool
	notice string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) mainLoopModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/invoice.pdf"
	pathInput.CharLimit = 4096
	pathInput.Width = 56

	filterInput := textinput.New()
	filterInput.Placeholder = "upload reference"
	filterInput.CharLimit = 64
	filterInput.Width = 30

	m := mainLoopModel{
		ctx:         ctx,
		services:    services,
		buildInfo:   buildInfo,
		pathInput:   pathInput,
		filterInput: filterInput,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.reload()

	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return waitForExpiry(m.ctx, m.services.SessionJob.Expired())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.running && !m.downloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		if !m.running {
			return m, nil
		}
		m.stage = models.ProgressEvent(msg)
		return m, waitForProgress(m.progress)
	case pipelineDoneMsg:
		return m.finishConversion(msg)
	case fileInspectedMsg:
		if msg.err != nil {
			m.errMsg = "Cannot add file: " + service.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.isStaged(msg.file.Path) {
			m.status = msg.file.Name + " is already selected"
			return m, nil
		}
		m.staged = append(m.staged, msg.file)
		m.status = "Added " + msg.file.Name
		return m, clearStatusAfter(statusTTL)
	case downloadDoneMsg:
		m.downloading = false
		if notice, ok := requiresLogin(msg.err); ok {
			return m.endSession(notice)
		}
		if msg.err != nil {
			m.errMsg = "Download failed: " + humanizeServerUnavailableError(msg.err)
			m.status = ""
			if len(msg.paths) > 0 {
				m.status = fmt.Sprintf("Saved %d file(s) before the error", len(msg.paths))
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = savedStatus(msg.paths)
		return m, nil
	case sessionExpiredMsg:
		notice, ok := requiresLogin(msg.err)
		if !ok {
			notice = app.MsgSessionExpired
		}
		return m.endSession(notice)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(keyMsg)
	}
	if m.adding {
		return m.updateAdding(keyMsg)
	}
	if m.filtering {
		return m.updateFiltering(keyMsg)
	}
	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit, keys.logout):
		logout := key.Matches(keyMsg, keys.logout)
		if m.running || m.downloading {
			m.confirm = &confirmModel{message: "A transfer is still running. Leave anyway?", logout: logout}
			return m, nil
		}
		m.logout = logout
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.addFile):
		m.errMsg = ""
		m.adding = true
		m.pathInput.SetValue("")
		return m, m.pathInput.Focus()
	case key.Matches(keyMsg, keys.clear):
		if m.running {
			return m, nil
		}
		m.staged = nil
		m.status = "Selection cleared"
	case key.Matches(keyMsg, keys.convert):
		return m.startConversion()
	case key.Matches(keyMsg, keys.filter):
		m.filtering = true
		m.filterInput.SetValue(m.filter)
		return m, m.filterInput.Focus()
	case key.Matches(keyMsg, keys.esc):
		if m.filter != "" {
			m.filter = ""
			m.reload()
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No uploads yet"
			return m, nil
		}
		m.detail = true
	case key.Matches(keyMsg, keys.originals, keys.results, keys.copy):
		return m.recordAction(keyMsg)
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.logout = m.confirm.logout
		m.confirm = nil
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.adding:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case m.filtering:
		m.filterInput, cmd = m.filterInput.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateAdding(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.adding = false
		m.pathInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := expandHome(strings.TrimSpace(m.pathInput.Value()))
		if path == "" {
			m.errMsg = "Enter a path to a PDF or ZIP file"
			return m, nil
		}
		m.adding = false
		m.pathInput.Blur()
		return m, m.cmdInspect(path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateFiltering(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.filtering = false
		m.filterInput.Blur()
		m.filter = ""
		m.reload()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(keyMsg)
	m.filter = m.filterInput.Value()
	m.reload()
	return m, cmd
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.current(); !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc, keys.enter):
		m.detail = false
	case key.Matches(keyMsg, keys.originals, keys.results, keys.copy):
		return m.recordAction(keyMsg)
	}
	return m, nil
}

// recordAction runs a download or clipboard action on the selected record.
func (m mainLoopModel) recordAction(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		m.status = "No uploads yet"
		return m, nil
	}

	if key.Matches(keyMsg, keys.copy) {
		if err := clipboard.WriteAll(rec.UploadReference); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied " + rec.UploadReference
		return m, clearStatusAfter(statusTTL)
	}

	if m.downloading {
		m.status = "A download is already in progress"
		return m, nil
	}
	if len(rec.FileIDs) == 0 {
		m.errMsg = service.ErrNoFilesSelected.Error()
		return m, nil
	}

	m.downloading = true
	m.errMsg = ""
	if key.Matches(keyMsg, keys.originals) {
		m.status = fmt.Sprintf("Downloading %d original file(s)...", len(rec.FileIDs))
		return m, tea.Batch(m.spinner.Tick, m.cmdDownloadOriginals(rec.FileIDs))
	}
	m.status = "Downloading LEDES output..."
	return m, tea.Batch(m.spinner.Tick, m.cmdDownloadResults(rec.FileIDs, rec.IsZipUpload))
}

func (m mainLoopModel) startConversion() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	if len(m.staged) == 0 {
		m.errMsg = service.ErrNoFilesSelected.Error()
		return m, nil
	}

	req := models.PipelineRequest{Files: append([]models.UploadFile(nil), m.staged...)}
	ch := make(chan models.ProgressEvent, progressBuffer)

	m.progress = ch
	m.running = true
	m.stage = models.ProgressEvent{Stage: models.PipelineUploading, Label: app.MsgUploadingFiles, Attempt: 1}
	m.status = ""
	m.errMsg = ""

	return m, tea.Batch(m.spinner.Tick, m.cmdConvert(req, ch), waitForProgress(ch))
}

func (m mainLoopModel) finishConversion(msg pipelineDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	m.progress = nil
	m.stage = models.ProgressEvent{}

	if notice, ok := requiresLogin(msg.err); ok {
		return m.endSession(notice)
	}
	if msg.err != nil {
		m.status = app.MsgPipelineFailed
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.staged = nil
	record, ok := m.services.RecordService.Build(msg.req, msg.result, msg.uploadedAt)
	if !ok {
		m.status = app.MsgNothingToProcess
		return m, nil
	}
	m.services.RecordService.Add(record)
	m.reload()
	m.idx = 0

	if msg.result.State == models.PipelineCompleteWithError {
		m.status = app.MsgCompleteWithErrors
		m.errMsg = msg.result.ProcessingError
		return m, nil
	}
	m.status = fmt.Sprintf("%s: %d of %d invoice(s) converted", app.MsgProcessingComplete, record.Invoices, len(record.FileIDs))
	return m, nil
}

func (m mainLoopModel) endSession(notice string) (tea.Model, tea.Cmd) {
	m.logout = true
	m.notice = notice
	return m, tea.Quit
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if m.confirm != nil {
		return renderPage("LEDES CONVERTER", m.confirm.View(), "")
	}

	if m.adding {
		out := "Path : [ " + m.pathInput.View() + " ]\n\n"
		out += "Only .pdf and .zip files are accepted.\n"
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
		}
		return renderPage("ADD FILE", strings.TrimRight(out, "\n"), "enter: add │ esc: cancel")
	}

	if m.detail {
		rec, ok := m.current()
		if !ok {
			return renderPage("UPLOAD DETAILS", "Upload not found", "esc: back")
		}
		return renderPage("UPLOAD DETAILS", strings.TrimRight(m.viewDetail(rec), "\n"), "o: download originals │ d: download LEDES │ c: copy ref │ esc: back")
	}

	out := m.viewUpload()
	out += "\n"
	out += m.viewMessages()
	out += m.viewResults()

	return renderPage("LEDES CONVERTER", strings.TrimRight(out, "\n"), mainHotKeys)
}

func (m mainLoopModel) viewUpload() string {
	out := "[ UPLOAD ]\n"
	if len(m.staged) == 0 {
		out += "No files selected\n"
	} else {
		out += "File                                 │ Size       │ Pages\n"
		out += "─────────────────────────────────────┼────────────┼──────\n"
		for _, f := range m.staged {
			pages := "-"
			if f.Pages > 0 {
				pages = fmt.Sprintf("%d", f.Pages)
			}
			out += fmt.Sprintf("%-36s │ %-10s │ %s\n", fitText(f.Name, 36), humanize.Bytes(uint64(f.Size)), pages)
		}
	}

	if m.running {
		label := m.stage.Label
		if m.stage.Attempt > 1 {
			label += fmt.Sprintf(" (attempt %d)", m.stage.Attempt)
		}
		out += "\n" + m.spinner.View() + " " + label + "\n"
	}
	return out
}

func (m mainLoopModel) viewMessages() string {
	out := ""
	if m.downloading {
		out += m.spinner.View() + " "
	}
	if m.status != "" {
		out += successStyle.Render("Status: "+m.status) + "\n"
	} else if m.downloading {
		out += "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}

func (m mainLoopModel) viewResults() string {
	out := "[ RESULTS ]\n"
	switch {
	case m.filtering:
		out += "Filter: [ " + m.filterInput.View() + " ]\n"
	case m.filter != "":
		out += "Filter: " + m.filter + " (esc: clear)\n"
	}

	if len(m.records) == 0 {
		if m.filter != "" {
			return out + "No uploads match the filter\n"
		}
		return out + "No uploads yet\n"
	}

	out += "  Reference      │ Uploaded        │ Invoice                  │ Inv │ Status\n"
	out += "  ───────────────┼─────────────────┼──────────────────────────┼─────┼────────\n"
	for i, rec := range m.records {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		out += fmt.Sprintf(
			"%s %-14s │ %-15s │ %-24s │ %3d │ %s\n",
			cursor,
			fitText(rec.UploadReference, 14),
			fitText(humanize.Time(rec.DateUploaded), 15),
			fitText(rec.InvoiceName, 24),
			rec.Invoices,
			rec.Status,
		)
	}
	return out
}

func (m mainLoopModel) viewDetail(rec models.ProcessedFileRecord) string {
	out := "Reference   : " + rec.UploadReference + "\n"
	out += "Uploaded    : " + rec.DateUploaded.Format("2006-01-02 15:04:05") + " (" + humanize.Time(rec.DateUploaded) + ")\n"
	out += "Invoice     : " + valueOrDash(rec.InvoiceName) + "\n"
	out += fmt.Sprintf("Invoices    : %d of %d\n", rec.Invoices, len(rec.FileIDs))
	out += "Status      : " + string(rec.Status) + "\n"
	out += "Source      : " + valueOrDash(rec.OriginalFileName) + "\n"
	if rec.ProcessingError != "" {
		out += errorStyle.Render("Error       : "+rec.ProcessingError) + "\n"
	}

	out += "\n[ OUTPUT FILES ]\n"
	out += "File                                 │ Created          │ Status\n"
	out += "─────────────────────────────────────┼──────────────────┼────────\n"
	for _, f := range m.services.RecordService.OutputFiles(rec) {
		out += fmt.Sprintf("%-36s │ %-16s │ %s\n", fitText(f.Name, 36), f.DateCreated.Format("2006-01-02 15:04"), f.Status)
	}

	if len(rec.LedeResults) > 0 {
		out += "\n[ LEDES RESULTS ]\n"
		out += "File ID │ Invoice                  │ Status  │ Error\n"
		out += "────────┼──────────────────────────┼─────────┼──────────────────\n"
		for _, res := range rec.LedeResults {
			invoice := strings.TrimSuffix(res.InvoiceName, ".pdf")
			if invoice == "" {
				invoice = service.InvoiceNameFromPath(res.LedeXLSXFile)
			}
			out += fmt.Sprintf("%-7d │ %-24s │ %-7s │ %s\n", res.FileID, fitText(invoice, 24), fitText(res.Status, 7), valueOrDash(res.Error))
		}
	}
	return out
}

func (m *mainLoopModel) reload() {
	m.records = m.services.RecordService.List(m.filter)
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.ProcessedFileRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.ProcessedFileRecord{}, false
	}
	return m.records[m.idx], true
}

func (m mainLoopModel) isStaged(path string) bool {
	for _, f := range m.staged {
		if f.Path == path {
			return true
		}
	}
	return false
}

func (m mainLoopModel) cmdInspect(path string) tea.Cmd {
	svc := m.services.FileService

	return func() tea.Msg {
		file, err := svc.Inspect(path)
		return fileInspectedMsg{file: file, err: err}
	}
}

// cmdConvert runs the pipeline and closes ch once it returns, which ends the
// waitForProgress chain.
func (m mainLoopModel) cmdConvert(req models.PipelineRequest, ch chan models.ProgressEvent) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PipelineService

	return func() tea.Msg {
		defer close(ch)
		result, err := svc.UploadAndProcess(ctx, req, ch)
		return pipelineDoneMsg{req: req, result: result, uploadedAt: time.Now(), err: err}
	}
}

func (m mainLoopModel) cmdDownloadOriginals(fileIDs []int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DownloadService

	return func() tea.Msg {
		paths, err := svc.DownloadOriginals(ctx, fileIDs)
		return downloadDoneMsg{paths: paths, err: err}
	}
}

func (m mainLoopModel) cmdDownloadResults(fileIDs []int64, isArchiveUpload bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DownloadService

	return func() tea.Msg {
		path, err := svc.DownloadResults(ctx, fileIDs, isArchiveUpload)
		if err != nil {
			return downloadDoneMsg{err: err}
		}
		return downloadDoneMsg{paths: []string{path}}
	}
}

func waitForProgress(ch <-chan models.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(ev)
	}
}

func waitForExpiry(ctx context.Context, ch <-chan error) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case err := <-ch:
			return sessionExpiredMsg{err: err}
		case <-ctx.Done():
			return nil
		}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func savedStatus(paths []string) string {
	switch len(paths) {
	case 0:
		return "Nothing was downloaded"
	case 1:
		return "Saved " + paths[0]
	default:
		return fmt.Sprintf("Saved %d files to %s", len(paths), filepath.Dir(paths[0]))
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
