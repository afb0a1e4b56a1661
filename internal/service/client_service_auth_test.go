package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ledes-client/internal/adapter"
	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/mock"
	"github.com/MKhiriev/go-ledes-client/internal/store"
	"github.com/MKhiriev/go-ledes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds a clientAuthService on top of mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockRepo}

	svc := NewClientAuthService(storages, mockAdapter, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockRepo
}

func validSession() models.Session {
	return models.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := validSession()

	gomock.InOrder(
		mockAdapter.EXPECT().
			Login(ctx, models.Credentials{Email: "user@example.com", Password: "secret"}).
			Return(session, nil),
		mockRepo.EXPECT().SaveSession(ctx, session).Return(nil),
	)

	got, err := svc.Login(ctx, models.Credentials{Email: "  user@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestClientAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty email", creds: models.Credentials{Password: "secret"}},
		{name: "blank email", creds: models.Credentials{Email: "   ", Password: "secret"}},
		{name: "empty password", creds: models.Credentials{Email: "user@example.com"}},
		{name: "both empty", creds: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter call is expected
			_, err := svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrEmptyCredentials)
		})
	}
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	respErr := adapter.NewResponseError(401, "Invalid credentials")
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Session{}, respErr)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Invalid credentials", UserMessage(err))
}

func TestClientAuthService_Login_IncompleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session := validSession()
	session.ClientSecret = ""
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(session, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestClientAuthService_Login_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(validSession(), nil)
	mockRepo.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Session_Present(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := validSession()
	stored.TokenType, stored.ExpiresIn = "", 0
	mockRepo.EXPECT().GetSession(ctx).Return(stored, nil).Times(2)

	first, err := svc.Session(ctx)
	require.NoError(t, err)
	second, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClientAuthService_Session_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		stored models.Session
	}{
		{name: "nothing stored", stored: models.Session{}},
		{name: "no access token", stored: models.Session{RefreshToken: "r", ClientID: "id", ClientSecret: "s"}},
		{name: "no client id", stored: models.Session{AccessToken: "a", ClientSecret: "s"}},
		{name: "no client secret", stored: models.Session{AccessToken: "a", ClientID: "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().GetSession(ctx).Return(tt.stored, nil)

			_, err := svc.Session(ctx)
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestClientAuthService_Session_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrExecutingQuery)

	_, err := svc.Session(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrMissingCredentials)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(validSession(), nil),
		mockAdapter.EXPECT().RefreshToken(ctx, "refresh-token").Return("new-access", nil),
		mockRepo.EXPECT().SaveAccessToken(ctx, "new-access").Return(nil),
	)

	require.NoError(t, svc.Refresh(ctx))
}

func TestClientAuthService_Refresh_NoRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session := validSession()
	session.RefreshToken = ""
	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(session, nil),
		mockRepo.EXPECT().ClearSession(ctx).Return(nil),
	)

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestClientAuthService_Refresh_ServerRejects_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	respErr := adapter.NewResponseError(401, "Token is invalid or expired")
	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(validSession(), nil),
		mockAdapter.EXPECT().RefreshToken(ctx, "refresh-token").Return("", respErr),
		mockRepo.EXPECT().ClearSession(ctx).Return(nil),
	)

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, ErrSessionExpired.Error(), UserMessage(err))
}

func TestClientAuthService_Refresh_SaveFails_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(validSession(), nil),
		mockAdapter.EXPECT().RefreshToken(ctx, gomock.Any()).Return("new-access", nil),
		mockRepo.EXPECT().SaveAccessToken(ctx, "new-access").Return(store.ErrExecutingQuery),
		mockRepo.EXPECT().ClearSession(ctx).Return(nil),
	)

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestClientAuthService_Refresh_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetSession(ctx).Return(validSession(), nil)
	mockAdapter.EXPECT().RefreshToken(ctx, gomock.Any()).Return("", adapter.ErrBadGateway)
	mockRepo.EXPECT().ClearSession(ctx).Return(store.ErrExecutingStatement)

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ClearSession(ctx).Return(nil)
	require.NoError(t, svc.Logout(ctx))

	mockRepo.EXPECT().ClearSession(ctx).Return(store.ErrExecutingStatement)
	assert.ErrorIs(t, svc.Logout(ctx), store.ErrExecutingStatement)
}
