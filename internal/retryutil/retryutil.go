package retryutil

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var options = []retry.Option{
	retry.Attempts(3),
	retry.Delay(50 * time.Millisecond),
	retry.LastErrorOnly(true),
	retry.RetryIf(IsRetryable),
}

func RetryWithData[T any](f func() (T, error)) (T, error) {
	return retry.DoWithData(f, options...)
}

func RetryWithoutData(f func() error) error {
	return retry.Do(f, options...)
}

// IsRetryable reports whether err may succeed on another attempt. Constraint
// violations, bad input, missing rows and cancelled contexts never will.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return !pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) &&
			!pgerrcode.IsDataException(pgErr.Code) &&
			!pgerrcode.IsSyntaxErrororAccessRuleViolation(pgErr.Code)
	}

	return true
}
