package domain

// Column describes one column of a relational result set, as reported by
// the backing engine's driver.
type Column struct {
	// Name is the column name (alias-aware).
	Name string
	// Type is the dialect-normalized type label, e.g. "INT64", "VARCHAR".
	Type string
	// RawType is the lower-cased driver type name, e.g. "bigint".
	RawType string
	// Length is the declared column length when the driver reports one.
	Length    int64
	HasLength bool
	// Nullable is false only when the driver positively reports NOT NULL.
	Nullable bool
	// Binary marks byte-oriented types (BLOB, BINARY, VARBINARY).
	Binary bool
	// Unsigned marks unsigned integer types.
	Unsigned bool
}

// Value is a single cell of a result row. Null distinguishes SQL NULL from
// an empty value; Data holds the raw bytes otherwise.
type Value struct {
	Data []byte
	Null bool
}

// Result carries the outcome of one statement execution. Exactly one of the
// two shapes is meaningful: a row set (RowSet true, Columns/Rows populated)
// or a write result (RowSet false, RowsAffected/LastInsertID populated).
type Result struct {
	Columns []Column
	Rows    [][]Value

	RowsAffected int64
	LastInsertID int64

	RowSet bool
}
