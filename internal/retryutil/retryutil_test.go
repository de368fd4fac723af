package retryutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsRetryable(t *testing.T) {
	table := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "connection error", err: errors.New("connection reset by peer"), expected: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, expected: false},
		{name: "wrapped foreign key violation", err: fmt.Errorf("failed to upsert: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), expected: false},
		{name: "numeric value out of range", err: &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange}, expected: false},
		{name: "no rows", err: pgx.ErrNoRows, expected: false},
		{name: "context canceled", err: context.Canceled, expected: false},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			if got := IsRetryable(v.err); got != v.expected {
				t.Fatalf("expected %v, got %v", v.expected, got)
			}
		})
	}
}

func TestRetryWithData(t *testing.T) {
	t.Run("Success after transient errors", func(t *testing.T) {
		attempts := 0
		result, err := RetryWithData(func() (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})

		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if result != 42 || attempts != 3 {
			t.Fatalf("expected 42 after 3 attempts, got %d after %d attempts", result, attempts)
		}
	})

	t.Run("Stops on constraint violation", func(t *testing.T) {
		attempts := 0
		pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
		_, err := RetryWithData(func() (int, error) {
			attempts++
			return 0, pgErr
		})

		if !errors.Is(err, pgErr) {
			t.Fatalf("expected %v, got %v", pgErr, err)
		}

		if attempts != 1 {
			t.Fatalf("expected 1 attempt, got %d", attempts)
		}
	})
}

func TestRetryWithoutData(t *testing.T) {
	attempts := 0
	err := RetryWithoutData(func() error {
		attempts++
		return errors.New("always failing")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
