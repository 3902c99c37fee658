package sql

import "net/url"

// Dialect abstracts the engine-specific parts of a SQL backend: which
// database/sql driver to use, how its connection URL becomes a driver DSN,
// and how driver-reported column types map to wire type labels.
type Dialect interface {
	// DriverName is the registered database/sql driver name.
	DriverName() string

	// BuildDSN converts a parsed connection URL into a driver DSN.
	BuildDSN(u *url.URL) (string, error)

	// MapColumn maps a driver-reported database type name to the normalized
	// wire label and reports whether the type is byte-oriented or unsigned.
	MapColumn(dbTypeName string) (label string, binary, unsigned bool)
}
