package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// retryPolicy bounds how transient database failures are retried.
type retryPolicy struct {
	maxRetries uint64
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 50 * time.Millisecond}

// withRetry runs fn, retrying with exponential backoff while the backend
// classifies the failure as [Retryable]. Other errors are returned at once.
// Only idempotent operations go through withRetry.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.retryPolicy.maxRetries, retry.NewExponential(db.retryPolicy.base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
