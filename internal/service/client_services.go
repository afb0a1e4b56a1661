package service

import (
	"github.com/MKhiriev/go-ledes-client/internal/adapter"
	"github.com/MKhiriev/go-ledes-client/internal/config"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	PipelineService ClientPipelineService
	DownloadService ClientDownloadService
	RecordService   ClientRecordService
	FileService     ClientFileService
	SessionJob      ClientSessionJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter, logger)

	return &ClientServices{
		AuthService:     authSvc,
		PipelineService: NewClientPipelineService(authSvc, serverAdapter, cfg.App, logger),
		DownloadService: NewClientDownloadService(authSvc, localStore, serverAdapter, cfg.Workers.DownloadInterval, logger),
		RecordService:   NewClientRecordService(),
		FileService:     NewClientFileService(logger),
		SessionJob:      NewClientSessionJob(authSvc, logger),
	}
}
