package configs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/prayer-surah-service/repository"
)

type Db struct {
	Conn    *pgxpool.Pool
	Queries repository.Querier
}

func NewDb(ctx context.Context, databaseURL string) (Db, error) {
	conn, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return Db{}, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return Db{}, fmt.Errorf("failed to ping database: %w", err)
	}

	return Db{
		Conn:    conn,
		Queries: repository.New(conn),
	}, nil
}

func (d Db) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}
