package sqlite

import (
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver
)

// Dialect implements sql.Dialect for SQLite, used for local deployments and
// as the live backend in tests.
type Dialect struct{}

func (d *Dialect) DriverName() string { return "sqlite" }

// BuildDSN extracts the database path from a sqlite:// URL. Query
// parameters (e.g. cache=shared) are passed through to the driver.
func (d *Dialect) BuildDSN(u *url.URL) (string, error) {
	path := u.Opaque
	if path == "" {
		path = u.Host + u.Path
	}
	if path == "" {
		return "", fmt.Errorf("sqlite URL must include a database path")
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path, nil
}

// MapColumn maps SQLite declared types to wire labels. SQLite reports the
// declared column type, which is free-form; match on the common affinities.
func (d *Dialect) MapColumn(dbTypeName string) (string, bool, bool) {
	name := strings.ToUpper(dbTypeName)

	switch {
	case name == "":
		// Expression columns carry no declared type.
		return "TEXT", false, false
	case strings.Contains(name, "INT"):
		return "INT64", false, false
	case strings.Contains(name, "BLOB"):
		return "BLOB", true, false
	case strings.Contains(name, "REAL"), strings.Contains(name, "FLOA"),
		strings.Contains(name, "DOUB"):
		return "FLOAT64", false, false
	case strings.Contains(name, "BOOL"):
		return "BOOLEAN", false, false
	case strings.Contains(name, "DATE"), strings.Contains(name, "TIME"):
		return "DATETIME", false, false
	case strings.Contains(name, "NUMERIC"), strings.Contains(name, "DECIMAL"):
		return "DECIMAL", false, false
	default:
		return "TEXT", false, false
	}
}
