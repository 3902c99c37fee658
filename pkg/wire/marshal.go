package wire

import (
	"encoding/base64"
	"strconv"

	"github.com/alekangelov/planetscale-go/pkg/domain"
)

// MySQL-compatible column flags and character set ids used by the wire
// protocol. charsetBinary applies to byte-oriented columns, charsetUTF8 to
// everything else.
const (
	flagNotNull  uint32 = 1
	flagUnsigned uint32 = 32
	flagBinary   uint32 = 128

	charsetUTF8   uint32 = 255
	charsetBinary uint32 = 63
)

// nullLength is the sentinel recorded in Row.Lengths for SQL NULL values.
const nullLength = "-1"

// MarshalResult shapes a relational result into its wire form. It is total:
// every Result maps to exactly one ResultRes and marshalling never fails.
func MarshalResult(res *domain.Result) *ResultRes {
	if !res.RowSet {
		return &ResultRes{
			RowsAffected: strconv.FormatInt(res.RowsAffected, 10),
			InsertID:     strconv.FormatInt(res.LastInsertID, 10),
		}
	}

	fields := make([]Field, len(res.Columns))
	for i, col := range res.Columns {
		fields[i] = marshalField(col)
	}

	rows := make([]Row, len(res.Rows))
	for i, tuple := range res.Rows {
		rows[i] = marshalRow(tuple)
	}

	return &ResultRes{Fields: fields, Rows: rows}
}

func marshalField(col domain.Column) Field {
	f := Field{
		Name:       col.Name,
		Type:       col.Type,
		ColumnType: col.RawType,
		Charset:    charsetUTF8,
	}
	if col.Binary {
		f.Charset = charsetBinary
		f.Flags |= flagBinary
	}
	if col.Unsigned {
		f.Flags |= flagUnsigned
	}
	if !col.Nullable {
		f.Flags |= flagNotNull
	}
	if col.HasLength && col.Length > 0 {
		f.ColumnLength = uint32(col.Length)
	}
	return f
}

func marshalRow(tuple []domain.Value) Row {
	lengths := make([]string, len(tuple))
	var blob []byte
	for i, v := range tuple {
		if v.Null {
			lengths[i] = nullLength
			continue
		}
		lengths[i] = strconv.Itoa(len(v.Data))
		blob = append(blob, v.Data...)
	}

	row := Row{Lengths: lengths}
	if len(blob) > 0 {
		row.Values = base64.StdEncoding.EncodeToString(blob)
	}
	return row
}
