package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledes-client/internal/logger"
	"github.com/MKhiriev/go-ledes-client/internal/utils"
)

const defaultSessionCheckInterval = 2 * time.Minute

type clientSessionJob struct {
	auth    ClientAuthService
	logger  *logger.Logger
	now     func() time.Time
	expired chan error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that keeps the stored access
// token fresh through auth. The job is idle until Start is called.
func NewClientSessionJob(auth ClientAuthService, logger *logger.Logger) ClientSessionJob {
	return &clientSessionJob{
		auth:    auth,
		logger:  logger,
		now:     time.Now,
		expired: make(chan error, 1),
	}
}

// Start implements ClientSessionJob. It stops any previously running job, then
// launches a background goroutine that checks the token every interval. If
// interval is zero or negative it defaults to 2 minutes. An expiry left over
// from the previous run is discarded. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSessionJob) Start(ctx context.Context, interval, leeway time.Duration) {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}

	j.Stop()

	select {
	case <-j.expired:
	default:
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, leeway)
			}
		}
	}()
}

func (j *clientSessionJob) Expired() <-chan error {
	return j.expired
}

// Stop implements ClientSessionJob. Safe to call when the job is not running.
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSessionJob) check(ctx context.Context, leeway time.Duration) {
	log := j.logger.With().Str("func", "clientSessionJob.check").Logger()

	session, err := j.auth.Session(ctx)
	if errors.Is(err, ErrMissingCredentials) {
		return
	}
	if err != nil {
		log.Err(err).Msg("failed to read session")
		return
	}

	if !utils.IsTokenLikelyExpired(session.AccessToken, j.now(), leeway) {
		return
	}

	log.Debug().Msg("access token close to expiry, refreshing")
	if err = j.auth.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Warn().Err(err).Msg("background refresh failed")
		select {
		case j.expired <- err:
		default:
		}
	}
}
