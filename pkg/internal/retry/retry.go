package retry

import (
	"context"

	// Packages
	backoff "github.com/cenkalti/backoff/v4"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do invokes fn, retrying with exponential backoff up to retries further
// attempts. The context cancels both the waits and the attempts.
func Do(ctx context.Context, retries uint, fn func() error) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)), ctx)
	return backoff.Retry(fn, bo)
}
