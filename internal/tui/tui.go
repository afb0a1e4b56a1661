package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/service"
	"github.com/MKhiriev/go-ledes-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal screens of the client: the login flow and the main
// upload/results loop. Each flow is a separate Bubble Tea program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// notice is shown on the next login screen, e.g. after the session expired.
	notice string
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the login screen until a login succeeds. It returns
// [ErrUserQuit] when the user leaves with ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.AuthService, t.notice),
	}
	t.notice = ""

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return programError(ctx, runErr)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Info().
		Str("func", "TUI.LoginFlow").
		Str("token_type", result.session.TokenType).
		Msg("user logged in")

	return nil
}

// MainLoop runs the upload and results screen. logout is true when the user
// logged out or the session ended; in the latter case the reason is shown on
// the next login screen.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newMainLoopModel(loopCtx, t.services, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, programError(ctx, runErr)
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.notice != "" {
		t.logger.Warn().
			Str("func", "TUI.MainLoop").
			Str("notice", result.notice).
			Msg("session ended")
	}
	t.notice = result.notice

	return result.logout, nil
}

func programError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
		return ctxErr
	}
	return err
}
