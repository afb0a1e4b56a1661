package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledes-client/internal/adapter"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/store"
	"github.com/MKhiriev/go-ledes-client/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: localStore.SessionRepository,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := a.logger.With().Str("func", "clientAuthService.Login").Logger()

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.Session{}, ErrEmptyCredentials
	}

	session, err := a.adapter.Login(ctx, creds)
	if err != nil {
		log.Warn().Err(err).Msg("login rejected")
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	if !session.IsAuthenticated() {
		log.Warn().
			Bool("has_access_token", session.AccessToken != "").
			Bool("has_client_id", session.ClientID != "").
			Bool("has_client_secret", session.ClientSecret != "").
			Msg("login response is missing credentials")
		return models.Session{}, fmt.Errorf("%w: incomplete session returned by server", ErrAuthFailed)
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	log.Info().
		Str("token_type", session.TokenType).
		Int64("expires_in", session.ExpiresIn).
		Str("scope", session.Scope).
		Bool("has_refresh_token", session.RefreshToken != "").
		Msg("logged in")

	return session, nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrMissingCredentials
	}

	return session, nil
}

func (a *clientAuthService) Refresh(ctx context.Context) error {
	log := a.logger.With().Str("func", "clientAuthService.Refresh").Logger()

	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return a.expire(ctx, fmt.Errorf("read session: %w", err))
	}
	if session.RefreshToken == "" {
		return a.expire(ctx, ErrNoRefreshToken)
	}

	accessToken, err := a.adapter.RefreshToken(ctx, session.RefreshToken)
	if err != nil {
		return a.expire(ctx, err)
	}

	if err = a.sessions.SaveAccessToken(ctx, accessToken); err != nil {
		return a.expire(ctx, fmt.Errorf("save access token: %w", err))
	}

	log.Info().Int("access_token_len", len(accessToken)).Msg("access token refreshed")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("logged out")
	return nil
}

// expire tears the stored session down after a failed refresh.
func (a *clientAuthService) expire(ctx context.Context, cause error) error {
	log := a.logger.With().Str("func", "clientAuthService.expire").Logger()

	if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
		log.Err(clearErr).Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrSessionExpired, errors.Join(cause, clearErr))
	}

	log.Warn().Err(cause).Msg("session expired")
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}
