// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledes-client/internal/adapter"
	"github.com/MKhiriev/go-ledes-client/internal/app"
	"github.com/MKhiriev/go-ledes-client/internal/config"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/utils"
	"github.com/MKhiriev/go-ledes-client/models"
)

// maxAuthRetries is the number of token refreshes a single run may perform.
const maxAuthRetries = 1

type runIDGenerator interface {
	Generate() string
}

type clientPipelineService struct {
	auth     ClientAuthService
	adapter  adapter.ServerAdapter
	defaults config.ClientApp
	runIDs   runIDGenerator
	logger   *logger.Logger
}

func NewClientPipelineService(auth ClientAuthService, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, logger *logger.Logger) ClientPipelineService {
	return &clientPipelineService{
		auth:     auth,
		adapter:  serverAdapter,
		defaults: appCfg,
		runIDs:   utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (p *clientPipelineService) UploadAndProcess(ctx context.Context, req models.PipelineRequest, progress chan<- models.ProgressEvent) (models.PipelineResult, error) {
	if len(req.Files) == 0 {
		return models.PipelineResult{State: models.PipelineFailed}, ErrNoFilesSelected
	}
	if req.ProjectID == "" {
		req.ProjectID = p.defaults.ProjectID
	}
	if req.ServiceID == "" {
		req.ServiceID = p.defaults.ServiceID
	}

	ctx, log := p.logger.WithRunID(ctx, p.runIDs.Generate())
	log.Info().Int("files", len(req.Files)).Msg("pipeline started")

	for attempt := 0; attempt <= maxAuthRetries; attempt++ {
		session, err := p.auth.Session(ctx)
		if err != nil {
			return p.fail(ctx, progress, attempt, err)
		}

		notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineUploading, Label: app.MsgUploadingFiles, Attempt: attempt + 1})

		uploaded, err := p.adapter.Upload(ctx, session, req)
		if err == nil {
			log.Info().
				Str("backend_run_id", uploaded.RunID).
				Int("files_uploaded", len(uploaded.FilesUploaded)).
				Int("files_skipped", len(uploaded.FilesSkipped)).
				Msg("upload accepted")
			return p.process(ctx, session, uploaded, progress, attempt), nil
		}

		if !errors.Is(err, adapter.ErrUnauthorized) {
			return p.fail(ctx, progress, attempt, fmt.Errorf("%w: %w", ErrRequestFailed, err))
		}

		if attempt == maxAuthRetries {
			if logoutErr := p.auth.Logout(ctx); logoutErr != nil {
				log.Err(logoutErr).Msg("failed to clear session")
			}
			return p.fail(ctx, progress, attempt, fmt.Errorf("%w: %w", ErrAuthExhausted, err))
		}

		log.Info().Int("attempt", attempt+1).Msg("upload unauthorized, refreshing session")
		notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineRefreshing, Label: app.MsgRefreshingSession, Attempt: attempt + 1})

		if err = p.auth.Refresh(ctx); err != nil {
			return p.fail(ctx, progress, attempt, err)
		}
	}

	return p.fail(ctx, progress, maxAuthRetries, ErrAuthExhausted)
}

// process runs the processing steps on an accepted upload. A failed step ends
// the run with CompleteWithError but never fails it.
func (p *clientPipelineService) process(ctx context.Context, session models.Session, uploaded models.UploadResult, progress chan<- models.ProgressEvent, attempt int) models.PipelineResult {
	log := logger.FromContext(ctx)
	result := models.PipelineResult{UploadResult: uploaded}

	fileIDs := uploaded.FileIDs()
	if len(fileIDs) == 0 {
		log.Info().Msg("no new files uploaded, skipping processing")
		result.State = models.PipelineNothingToProcess
		notify(ctx, progress, models.ProgressEvent{Stage: result.State, Label: app.MsgNothingToProcess, Attempt: attempt + 1})
		return result
	}

	processing, err := p.runSteps(ctx, session, fileIDs, progress, attempt)
	if err != nil {
		log.Warn().Err(err).Msg("processing failed after upload")
		result.ProcessingError = processingErrorMessage(err)
		result.State = models.PipelineCompleteWithError
		notify(ctx, progress, models.ProgressEvent{Stage: result.State, Label: app.MsgCompleteWithErrors, Attempt: attempt + 1})
		return result
	}

	result.ProcessingResults = processing
	result.State = models.PipelineComplete
	log.Info().Int("lede_results", len(processing.GenerateLede.Results)).Msg("pipeline complete")
	notify(ctx, progress, models.ProgressEvent{Stage: result.State, Label: app.MsgProcessingComplete, Attempt: attempt + 1})

	return result
}

func (p *clientPipelineService) runSteps(ctx context.Context, session models.Session, fileIDs []int64, progress chan<- models.ProgressEvent, attempt int) (*models.ProcessingResults, error) {
	var (
		results models.ProcessingResults
		err     error
	)

	notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineProcessingInvoices, Label: app.MsgProcessingInvoices, Attempt: attempt + 1})
	if results.ProcessInvoices, err = p.adapter.ProcessInvoices(ctx, session, fileIDs); err != nil {
		return nil, &StepError{Stage: models.PipelineProcessingInvoices, Err: err}
	}

	notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineExtractingMetadata, Label: app.MsgExtractingMetadata, Attempt: attempt + 1})
	if results.ExtractMetadata, err = p.adapter.ExtractMetadata(ctx, session, fileIDs); err != nil {
		return nil, &StepError{Stage: models.PipelineExtractingMetadata, Err: err}
	}

	notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineGeneratingLedes, Label: app.MsgGeneratingLedeReport, Attempt: attempt + 1})
	if results.GenerateLede, err = p.adapter.GenerateLedes(ctx, session, fileIDs); err != nil {
		return nil, &StepError{Stage: models.PipelineGeneratingLedes, Err: err}
	}

	return &results, nil
}

func (p *clientPipelineService) fail(ctx context.Context, progress chan<- models.ProgressEvent, attempt int, err error) (models.PipelineResult, error) {
	logger.FromContext(ctx).Error().Err(err).Int("attempt", attempt+1).Msg("pipeline failed")
	notify(ctx, progress, models.ProgressEvent{Stage: models.PipelineFailed, Label: app.MsgPipelineFailed, Attempt: attempt + 1})

	return models.PipelineResult{State: models.PipelineFailed}, err
}

// notify sends ev unless progress is nil or ctx is done first.
func notify(ctx context.Context, progress chan<- models.ProgressEvent, ev models.ProgressEvent) {
	if progress == nil {
		return
	}

	select {
	case progress <- ev:
	case <-ctx.Done():
	}
}

func processingErrorMessage(err error) string {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		err = stepErr.Err
	}

	if msg := adapter.Message(err); msg != "" {
		return msg
	}
	return app.MsgProcessingFailed
}
