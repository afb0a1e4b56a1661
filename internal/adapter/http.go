package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ledes-client/internal/config"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/utils"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/go-resty/resty/v2"
)

// Backend routes.
const (
	pathLogin               = "/auth/simple-login/"
	pathRefresh             = "/auth/web/token/refresh/"
	pathUpload              = "/core/upload/"
	pathProcessInvoices     = "/invoice_data_extraction/process_invoices/"
	pathExtractMetadata     = "/invoice_data_extraction/extract_metadata/"
	pathGenerateLede        = "/invoice_data_extraction/generate_lede/"
	pathDownloadOriginal    = "/core/download/"
	pathDownloadLedes       = "/core/download-zip-only-ledes/"
	pathDownloadLedesBundle = "/core/download-zip-list-only-ledes/"
)

// Request headers carrying the client credentials of a session.
const (
	headerClientID     = "X-Client-ID"
	headerClientSecret = "X-Client-Secret"
)

var errEmptyAccessToken = errors.New("refresh response has no access token")

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. On a non-2xx answer the returned
// *ResponseError carries the server "detail" or "Login failed: <status>".
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(pathLogin)
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp, "Login"); err != nil {
		return models.Session{}, err
	}
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode login response: %w", err)
	}

	h.logger.Debug().
		Str("token_type", session.TokenType).
		Int64("expires_in", session.ExpiresIn).
		Str("scope", session.Scope).
		Str("client_id", session.ClientID).
		Msg("login successful")

	return session, nil
}

// RefreshToken implements [ServerAdapter].
func (h *httpServerAdapter) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var refreshed models.RefreshResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{Refresh: refreshToken}).
		Post(pathRefresh)
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp, "Token refresh"); err != nil {
		return "", err
	}
	if err = json.Unmarshal(resp.Body(), &refreshed); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if refreshed.Access == "" {
		return "", errEmptyAccessToken
	}

	h.logger.Debug().Int("access_token_len", len(refreshed.Access)).Msg("token refreshed")
	return refreshed.Access, nil
}

// Upload implements [ServerAdapter]. Every file is opened for the duration
// of the request and closed afterwards.
func (h *httpServerAdapter) Upload(ctx context.Context, session models.Session, req models.PipelineRequest) (models.UploadResult, error) {
	fields := make([]*resty.MultipartField, 0, len(req.Files))
	closers := make([]io.Closer, 0, len(req.Files))
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	for _, f := range req.Files {
		fh, err := os.Open(f.Path)
		if err != nil {
			return models.UploadResult{}, fmt.Errorf("open upload file %q: %w", f.Name, err)
		}
		closers = append(closers, fh)

		fields = append(fields, &resty.MultipartField{
			Param:       "file",
			FileName:    f.Name,
			ContentType: f.MimeType,
			Reader:      fh,
		})
	}

	var result models.UploadResult

	resp, err := h.authedRequest(ctx, session).
		SetMultipartFields(fields...).
		SetMultipartFormData(map[string]string{
			"project_id": req.ProjectID,
			"service_id": req.ServiceID,
		}).
		Post(pathUpload)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp, "Upload"); err != nil {
		return models.UploadResult{}, err
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.UploadResult{}, fmt.Errorf("decode upload response: %w", err)
	}

	h.logger.Debug().
		Str("run_id", result.RunID).
		Int("uploaded", len(result.FilesUploaded)).
		Int("skipped", len(result.FilesSkipped)).
		Msg("upload successful")

	return result, nil
}

// ProcessInvoices implements [ServerAdapter].
func (h *httpServerAdapter) ProcessInvoices(ctx context.Context, session models.Session, fileIDs []int64) (json.RawMessage, error) {
	return h.runStep(ctx, session, pathProcessInvoices, "Process invoices", fileIDs)
}

// ExtractMetadata implements [ServerAdapter].
func (h *httpServerAdapter) ExtractMetadata(ctx context.Context, session models.Session, fileIDs []int64) (json.RawMessage, error) {
	return h.runStep(ctx, session, pathExtractMetadata, "Extract metadata", fileIDs)
}

// GenerateLedes implements [ServerAdapter].
func (h *httpServerAdapter) GenerateLedes(ctx context.Context, session models.Session, fileIDs []int64) (models.LedeReport, error) {
	body, err := h.runStep(ctx, session, pathGenerateLede, "Generate LEDE", fileIDs)
	if err != nil {
		return models.LedeReport{}, err
	}

	var report models.LedeReport
	if err = json.Unmarshal(body, &report); err != nil {
		return models.LedeReport{}, fmt.Errorf("decode generate lede response: %w", err)
	}
	return report, nil
}

func (h *httpServerAdapter) runStep(ctx context.Context, session models.Session, path, op string, fileIDs []int64) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx, session).
		SetQueryParam("file_ids", utils.JoinFileIDs(fileIDs)).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", strings.ToLower(op), err)
	}
	if err = mapHTTPError(resp, op); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: response is not valid JSON", strings.ToLower(op))
	}

	return json.RawMessage(body), nil
}

// DownloadOriginal implements [ServerAdapter].
func (h *httpServerAdapter) DownloadOriginal(ctx context.Context, session models.Session, fileID int64) (models.DownloadedFile, error) {
	return h.download(ctx, session, pathDownloadOriginal, "Download", "file_id", strconv.FormatInt(fileID, 10))
}

// DownloadLedes implements [ServerAdapter].
func (h *httpServerAdapter) DownloadLedes(ctx context.Context, session models.Session, fileID int64) (models.DownloadedFile, error) {
	return h.download(ctx, session, pathDownloadLedes, "ZIP download", "file_id", strconv.FormatInt(fileID, 10))
}

// DownloadLedesBundle implements [ServerAdapter].
func (h *httpServerAdapter) DownloadLedesBundle(ctx context.Context, session models.Session, fileIDs []int64) (models.DownloadedFile, error) {
	return h.download(ctx, session, pathDownloadLedesBundle, "ZIP download", "file_ids", utils.JoinFileIDs(fileIDs))
}

func (h *httpServerAdapter) download(ctx context.Context, session models.Session, path, op, param, value string) (models.DownloadedFile, error) {
	resp, err := h.authedRequest(ctx, session).
		SetQueryParam(param, value).
		Get(path)
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp, op); err != nil {
		return models.DownloadedFile{}, err
	}

	return models.DownloadedFile{
		Filename:    utils.FilenameFromContentDisposition(resp.Header().Get("Content-Disposition")),
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, session models.Session) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(session.AccessToken).
		SetHeader(headerClientID, session.ClientID).
		SetHeader(headerClientSecret, session.ClientSecret)
}
