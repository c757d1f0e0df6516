//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "success: serialization failure is retried",
			err:  &pgconn.PgError{Code: pgErrCodeSerializationFailure},
			want: true,
		},
		{
			name: "success: deadlock is retried",
			err:  &pgconn.PgError{Code: pgErrCodeDeadlockDetected},
			want: true,
		},
		{
			name: "success: wrapped serialization failure is retried",
			err:  errs.Wrap(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, "failed to create rental"),
			want: true,
		},
		{
			name: "error: unique violation is not retried",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "error: non-postgres error is not retried",
			err:  errs.New("car not found"),
			want: false,
		},
		{
			name: "error: context cancellation is not retried",
			err:  context.Canceled,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errs.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	assert.Zero(t, cryptoRandInt63n(-5))

	for i := 0; i < 100; i++ {
		n := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(10))
	}
}
