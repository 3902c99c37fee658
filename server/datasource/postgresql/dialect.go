package postgresql

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq" // registers the "postgres" driver
)

// Dialect implements sql.Dialect for PostgreSQL via lib/pq, which accepts
// postgres:// URLs as DSNs directly.
type Dialect struct{}

func (d *Dialect) DriverName() string { return "postgres" }

func (d *Dialect) BuildDSN(u *url.URL) (string, error) {
	if u.Host == "" {
		return "", fmt.Errorf("postgres URL must include a host")
	}
	// lib/pq understands the URL form; normalize the scheme alias.
	dsn := *u
	dsn.Scheme = "postgres"
	return dsn.String(), nil
}

// MapColumn maps lib/pq database type names to wire labels. PostgreSQL has
// no unsigned integers.
func (d *Dialect) MapColumn(dbTypeName string) (string, bool, bool) {
	name := strings.ToUpper(dbTypeName)

	switch name {
	case "INT2":
		return "INT16", false, false
	case "INT4":
		return "INT32", false, false
	case "INT8":
		return "INT64", false, false
	case "FLOAT4":
		return "FLOAT32", false, false
	case "FLOAT8":
		return "FLOAT64", false, false
	case "NUMERIC":
		return "DECIMAL", false, false
	case "BYTEA":
		return "BLOB", true, false
	case "BOOL":
		return "BOOLEAN", false, false
	case "VARCHAR", "BPCHAR", "TEXT", "NAME":
		return "VARCHAR", false, false
	case "DATE":
		return "DATE", false, false
	case "TIME", "TIMETZ":
		return "TIME", false, false
	case "TIMESTAMP", "TIMESTAMPTZ":
		return "TIMESTAMP", false, false
	case "JSON", "JSONB":
		return "JSON", false, false
	case "UUID":
		return "UUID", false, false
	default:
		return name, false, false
	}
}
