package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// ArchiveStorage implements base.ArchiveStore on top of a pgx connection
// pool. All queries are plain reads; this layer never writes to the store
// and never holds a transaction across a multi-step computation.
type ArchiveStorage struct {
	conn *pgxpool.Pool
}

// NewArchiveStorage creates a store adapter backed by the given pool.
func NewArchiveStorage(conn *pgxpool.Pool) *ArchiveStorage {
	return &ArchiveStorage{
		conn: conn,
	}
}
