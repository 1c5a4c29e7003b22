package client

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
)

// maxRetryAttempts bounds retries of a single remote call. Attempts beyond
// the first only happen for transient failures.
const maxRetryAttempts = 3

// withRetry runs fn with bounded exponential backoff. Authentication, quota,
// and not-found responses are terminal and surface immediately; network and
// server-side errors are retried.
func withRetry(ctx context.Context, op string, fn func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newExponentialBackOff(), maxRetryAttempts-1), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if isTerminal(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Str("operation", op).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("Transient API failure, retrying")
	})
}

// isTerminal reports whether a remote error must not be retried. Quota
// exhaustion and bad credentials come back as 403/401 from the Data API.
func isTerminal(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400, 401, 403, 404:
			return true
		}
		return false
	}
	// Context cancellation is terminal; backoff.WithContext also stops on it.
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func newExponentialBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	return bo
}
