package commands

import (
	"context"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// DefaultRetryAttempts bounds how often a unit of work is replayed after
// losing a race on the same rows.
const DefaultRetryAttempts = 3

// conflictRetrier replays an operation that failed with
// errs.ErrConcurrentUpdate. Any other error ends the loop immediately.
type conflictRetrier struct {
	attempts int
	logger   *zap.Logger
}

func newConflictRetrier(attempts int, logger *zap.Logger) conflictRetrier {
	if attempts < 1 {
		attempts = 1
	}
	return conflictRetrier{attempts: attempts, logger: logger}
}

func (r conflictRetrier) do(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 10 * time.Millisecond
	policy.MaxInterval = 200 * time.Millisecond

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrConcurrentUpdate) {
			return backoff.Permanent(err)
		}
		r.logger.Debug("concurrent update, retrying", zap.Int("attempt", attempt), zap.Error(err))
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.attempts-1)), ctx)) //nolint:gosec // attempts >= 1
}
