package dbutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/prayer-surah-service/internal/retryutil"
	"github.com/mdayat/prayer-surah-service/repository"
)

// RetryableTxWithData runs f inside a single transaction and retries the whole
// transaction on transient failures. The transaction is committed only when f
// returns a nil error.
func RetryableTxWithData[T any](
	ctx context.Context,
	conn *pgxpool.Pool,
	f func(qtx repository.Querier) (T, error),
) (T, error) {
	return retryutil.RetryWithData(func() (zero T, err error) {
		var tx pgx.Tx
		tx, err = conn.Begin(ctx)
		if err != nil {
			return zero, err
		}

		defer func() {
			if err == nil {
				err = tx.Commit(ctx)
			}

			if err != nil {
				tx.Rollback(ctx)
			}
		}()

		return f(repository.New(tx))
	})
}
