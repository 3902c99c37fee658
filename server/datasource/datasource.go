// Package datasource resolves connection URLs to engine dialects and opens
// the shared connection pool.
package datasource

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alekangelov/planetscale-go/pkg/config"
	"github.com/alekangelov/planetscale-go/pkg/domain"
	"github.com/alekangelov/planetscale-go/server/datasource/mysql"
	"github.com/alekangelov/planetscale-go/server/datasource/postgresql"
	sqlcommon "github.com/alekangelov/planetscale-go/server/datasource/sql"
	"github.com/alekangelov/planetscale-go/server/datasource/sqlite"
)

// DialectFor returns the dialect registered for a connection URL scheme.
func DialectFor(scheme string) (sqlcommon.Dialect, error) {
	switch scheme {
	case "mysql":
		return &mysql.Dialect{}, nil
	case "postgres", "postgresql":
		return &postgresql.Dialect{}, nil
	case "sqlite", "file":
		return &sqlite.Dialect{}, nil
	default:
		return nil, &domain.ErrUnsupportedScheme{Scheme: scheme}
	}
}

// Open parses rawURL, picks the matching dialect and opens the pool
// eagerly, verifying connectivity before returning.
func Open(ctx context.Context, rawURL string, cfg config.PoolConfig) (*sqlcommon.Pool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection URL: %w", err)
	}

	dialect, err := DialectFor(u.Scheme)
	if err != nil {
		return nil, err
	}

	return sqlcommon.Open(ctx, dialect, u, cfg)
}
