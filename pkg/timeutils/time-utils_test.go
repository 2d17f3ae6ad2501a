package timeutils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTemporary = errors.New("temporary")

func TestRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	res, err := Retry(
		context.Background(),
		[]time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		func(context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errTemporary
			}
			return 42, nil
		},
		func(error) bool { return true },
	)
	assert.NoError(t, err)
	assert.Equal(t, 42, res)
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	errPermanent := errors.New("permanent")
	attempts := 0
	_, err := Retry(
		context.Background(),
		[]time.Duration{time.Millisecond, time.Millisecond},
		func(context.Context) (int, error) {
			attempts++
			return 0, errPermanent
		},
		func(err error) bool { return !errors.Is(err, errPermanent) },
	)
	assert.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, attempts)
}

func TestRetryAllAttemptsFailed(t *testing.T) {
	_, err := Retry(
		context.Background(),
		[]time.Duration{time.Millisecond, time.Millisecond},
		func(context.Context) (int, error) {
			return 0, errTemporary
		},
		func(error) bool { return true },
	)
	assert.ErrorIs(t, err, ErrAllAttemptsFailed)
}
