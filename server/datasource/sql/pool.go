package sql

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/alekangelov/planetscale-go/pkg/config"
	"github.com/alekangelov/planetscale-go/pkg/domain"
)

// Pool owns the bounded set of live connections to the backing store.
// Acquire and Release are safe for concurrent use from any number of
// request handlers; database/sql provides the underlying accounting.
type Pool struct {
	db      *sql.DB
	dialect Dialect
	cfg     config.PoolConfig
}

// Open builds the driver DSN for u, opens the pool with the configured
// bounds and verifies connectivity before returning.
func Open(ctx context.Context, dialect Dialect, u *url.URL, cfg config.PoolConfig) (*Pool, error) {
	dsn, err := dialect.BuildDSN(u)
	if err != nil {
		return nil, &domain.ErrConnectionFailed{
			Driver: dialect.DriverName(),
			Reason: "build DSN: " + err.Error(),
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, &domain.ErrConnectionFailed{
			Driver: dialect.DriverName(),
			Reason: err.Error(),
		}
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, &domain.ErrConnectionFailed{
			Driver: dialect.DriverName(),
			Reason: err.Error(),
		}
	}

	return &Pool{db: db, dialect: dialect, cfg: cfg}, nil
}

// Acquire leases one dedicated connection, blocking until one is available
// or the wait exceeds the configured connect timeout. A failed acquire is
// an error for the current request only, never a crash.
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.ConnectTimeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, &domain.ErrConnectionFailed{
			Driver: p.dialect.DriverName(),
			Reason: err.Error(),
		}
	}
	return conn, nil
}

// Release returns a leased connection to the pool. Safe to call with nil.
func (p *Pool) Release(conn *sql.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// Dialect returns the dialect this pool was opened with.
func (p *Pool) Dialect() Dialect {
	return p.dialect
}

// Stats exposes the pool counters.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close shuts the pool down.
func (p *Pool) Close() error {
	return p.db.Close()
}
