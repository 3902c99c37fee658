package wire

import "github.com/google/uuid"

// Field describes one column of a marshalled result set in the shape the
// serverless driver protocol expects.
type Field struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Table        string `json:"table,omitempty"`
	Database     string `json:"database,omitempty"`
	OrgTable     string `json:"orgTable,omitempty"`
	OrgName      string `json:"orgName,omitempty"`
	ColumnLength uint32 `json:"columnLength,omitempty"`
	Charset      uint32 `json:"charset,omitempty"`
	Flags        uint32 `json:"flags,omitempty"`
	ColumnType   string `json:"columnType,omitempty"`
}

// Row is one result tuple. Lengths holds the decimal byte length of each
// value in column order, with "-1" marking SQL NULL. Values is the standard
// base64 encoding of every non-null value's bytes concatenated in column
// order; it is omitted when the row carries no bytes at all.
type Row struct {
	Lengths []string `json:"lengths"`
	Values  string   `json:"values,omitempty"`
}

// ResultRes is the wire form of a statement result. A write result sets
// RowsAffected/InsertID and leaves Fields/Rows empty; a read result does
// the opposite. Integers travel as decimal strings so 64-bit values survive
// JSON round-trips.
type ResultRes struct {
	RowsAffected string  `json:"rowsAffected,omitempty"`
	InsertID     string  `json:"insertId,omitempty"`
	Fields       []Field `json:"fields,omitempty"`
	Rows         []Row   `json:"rows,omitempty"`
}

// Error is the protocol-level error surfaced to clients. Code follows
// HTTP-style status semantics.
type Error struct {
	Message string `json:"message"`
	Code    uint32 `json:"code"`
}

// ResponseBody is the uniform envelope for every endpoint. Session is always
// present; Result and Error are mutually exclusive and serialize as explicit
// nulls when absent. Timing, when set, is elapsed milliseconds.
type ResponseBody struct {
	Session uuid.UUID  `json:"session"`
	Result  *ResultRes `json:"result"`
	Error   *Error     `json:"error"`
	Timing  *uint32    `json:"timing"`
}

// SessionResponse builds an envelope carrying only a session token. This is
// the CreateSession success shape and the health-check shape.
func SessionResponse(session uuid.UUID) ResponseBody {
	return ResponseBody{Session: session}
}

// ErrorResponse builds a terminal error envelope.
func ErrorResponse(session uuid.UUID, e Error) ResponseBody {
	return ResponseBody{Session: session, Error: &e}
}

// ResultResponse builds a successful execution envelope.
func ResultResponse(session uuid.UUID, res *ResultRes, timingMs uint32) ResponseBody {
	return ResponseBody{Session: session, Result: res, Timing: &timingMs}
}
