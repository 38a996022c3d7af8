package database

import "context"

// DB is the read-only query surface the repositories depend on. Keeping it
// as an interface lets usecase tests run against fakes without a live pool.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
