package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/models"
)

// Retry policy for statements that failed with a transient SQLite error.
const (
	maxStatementAttempts = 3
	statementRetryDelay  = 50 * time.Millisecond
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. Each credential is one row of session_values.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession deletes the previous values and writes the new ones in a
// single transaction, so a reader never observes a mix of two sessions.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	deleteQuery, deleteArgs, err := buildDeleteValuesQuery(sessionKeys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	upsertQuery, upsertArgs, err := buildUpsertValuesQuery(sessionKeys, map[string]string{
		keyAccessToken:  session.AccessToken,
		keyRefreshToken: session.RefreshToken,
		keyClientID:     session.ClientID,
		keyClientSecret: session.ClientSecret,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.withRetry(ctx, "*sessionRepository.SaveSession", func() error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if _, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return nil
		})
	})
}

// GetSession reads all stored values. Rows for unknown keys are ignored.
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectValuesQuery(sessionKeys)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.withRetry(ctx, "*sessionRepository.GetSession", func() error {
		session = models.Session{}

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var name, value string
			if err = rows.Scan(&name, &value); err != nil {
				log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning error")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			assignSessionValue(&session, name, value)
		}

		return rows.Err()
	})
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// SaveAccessToken replaces only the access token row.
func (r *sessionRepository) SaveAccessToken(ctx context.Context, accessToken string) error {
	query, args, err := buildUpsertValuesQuery([]string{keyAccessToken}, map[string]string{
		keyAccessToken: accessToken,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.withRetry(ctx, "*sessionRepository.SaveAccessToken", func() error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// ClearSession removes every session row in one statement.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildDeleteValuesQuery(sessionKeys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.withRetry(ctx, "*sessionRepository.ClearSession", func() error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *sessionRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// withRetry runs op again while it fails with a retryable driver error.
func (r *sessionRepository) withRetry(ctx context.Context, funcName string, op func() error) error {
	log := logger.FromContextOr(ctx, r.logger)

	var err error
	for attempt := 1; attempt <= maxStatementAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		if attempt == maxStatementAttempts || r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).Str("func", funcName).Int("attempt", attempt).Msg("database is busy, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(statementRetryDelay):
		}
	}

	log.Err(err).Str("func", funcName).Msg("database error")
	return err
}

func assignSessionValue(s *models.Session, name, value string) {
	switch name {
	case keyAccessToken:
		s.AccessToken = value
	case keyRefreshToken:
		s.RefreshToken = value
	case keyClientID:
		s.ClientID = value
	case keyClientSecret:
		s.ClientSecret = value
	}
}
