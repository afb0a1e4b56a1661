package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledes-client/internal/config"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/service"
	"github.com/MKhiriev/go-ledes-client/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run alternates between the login flow and the main loop until the user
// quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := a.ensureSession(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		logout, err := a.runMainLoop(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("func", "App.Run").Msg("user logged out")
	}
}

func (a *App) ensureSession(ctx context.Context) error {
	_, err := a.services.AuthService.Session(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, service.ErrMissingCredentials) {
		return fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}

func (a *App) runMainLoop(ctx context.Context) (bool, error) {
	a.services.SessionJob.Start(ctx, a.workers.SessionCheckInterval, a.workers.SessionRefreshLeeway)
	defer a.services.SessionJob.Stop()

	return a.ui.MainLoop(ctx)
}
