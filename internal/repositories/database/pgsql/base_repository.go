package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared connection pool. Every write here is a
// single statement; ownership-chain cleanup is delegated to ON DELETE
// CASCADE, so repositories never open explicit transactions.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
