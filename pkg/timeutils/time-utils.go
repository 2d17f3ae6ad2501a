package timeutils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrAllAttemptsFailed = errors.New("all attempts failed")
)

// Retry runs function once per entry in attemptDelays, sleeping for the
// corresponding delay after each failed attempt. needRetry decides whether
// an error is worth another attempt.
func Retry[T any](
	ctx context.Context,
	attemptDelays []time.Duration,
	function func(context.Context) (T, error),
	needRetry func(err error) bool,
) (T, error) {
	for _, delay := range attemptDelays {
		if ctx.Err() != nil {
			var res T
			return res, fmt.Errorf("retry canceled: %w", ctx.Err())
		}
		res, err := function(ctx)
		if err == nil {
			return res, nil
		}
		if !needRetry(err) {
			return res, err
		}
		if err := SleepCtx(ctx, delay); err != nil {
			var res T
			return res, err
		}
	}
	var res T
	return res, ErrAllAttemptsFailed
}

func SleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("sleep canceled: %w", ctx.Err())
	case <-time.After(d):
		return nil
	}
}
