package wire

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekangelov/planetscale-go/pkg/domain"
)

func TestMarshalResult_WriteShape(t *testing.T) {
	res := MarshalResult(&domain.Result{
		RowsAffected: 1,
		LastInsertID: 9007199254740993, // beyond float64 precision
	})

	assert.Equal(t, "1", res.RowsAffected)
	assert.Equal(t, "9007199254740993", res.InsertID)
	assert.Nil(t, res.Fields)
	assert.Nil(t, res.Rows)
}

func TestMarshalResult_ReadShape(t *testing.T) {
	in := &domain.Result{
		RowSet: true,
		Columns: []domain.Column{
			{Name: "id", Type: "INT64", RawType: "bigint", Nullable: false},
			{Name: "name", Type: "VARCHAR", RawType: "varchar", Nullable: true, Length: 255, HasLength: true},
		},
		Rows: [][]domain.Value{
			{{Data: []byte("1")}, {Data: []byte("alice")}},
			{{Data: []byte("2")}, {Null: true}},
		},
	}

	res := MarshalResult(in)
	require.Len(t, res.Fields, 2)
	require.Len(t, res.Rows, 2)
	assert.Empty(t, res.RowsAffected)
	assert.Empty(t, res.InsertID)

	// Every row carries one length per field.
	for _, row := range res.Rows {
		assert.Len(t, row.Lengths, len(res.Fields))
	}

	assert.Equal(t, "id", res.Fields[0].Name)
	assert.Equal(t, "INT64", res.Fields[0].Type)
	assert.Equal(t, "bigint", res.Fields[0].ColumnType)
	assert.Equal(t, flagNotNull, res.Fields[0].Flags&flagNotNull)
	assert.Equal(t, uint32(255), res.Fields[1].ColumnLength)
	assert.Zero(t, res.Fields[1].Flags&flagNotNull)

	assert.Equal(t, []string{"1", "5"}, res.Rows[0].Lengths)
	decoded, err := base64.StdEncoding.DecodeString(res.Rows[0].Values)
	require.NoError(t, err)
	assert.Equal(t, "1alice", string(decoded))
}

func TestMarshalResult_NullSentinel(t *testing.T) {
	in := &domain.Result{
		RowSet:  true,
		Columns: []domain.Column{{Name: "a", Type: "TEXT"}, {Name: "b", Type: "TEXT"}},
		Rows: [][]domain.Value{
			{{Null: true}, {Null: true}},
			{{Data: []byte{}}, {Null: true}},
		},
	}

	res := MarshalResult(in)
	require.Len(t, res.Rows, 2)

	// All-null row: sentinel lengths, no encoded blob at all.
	assert.Equal(t, []string{"-1", "-1"}, res.Rows[0].Lengths)
	assert.Empty(t, res.Rows[0].Values)

	// Empty value is length 0, not NULL.
	assert.Equal(t, []string{"0", "-1"}, res.Rows[1].Lengths)
}

func TestMarshalResult_BinarySafe(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xfe, 0xff, '\n'}
	in := &domain.Result{
		RowSet:  true,
		Columns: []domain.Column{{Name: "data", Type: "BLOB", Binary: true}},
		Rows:    [][]domain.Value{{{Data: payload}}},
	}

	res := MarshalResult(in)
	require.Len(t, res.Rows, 1)

	assert.Equal(t, charsetBinary, res.Fields[0].Charset)
	assert.Equal(t, flagBinary, res.Fields[0].Flags&flagBinary)

	decoded, err := base64.StdEncoding.DecodeString(res.Rows[0].Values)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
	assert.Equal(t, []string{"5"}, res.Rows[0].Lengths)
}

func TestMarshalResult_UnsignedFlag(t *testing.T) {
	in := &domain.Result{
		RowSet:  true,
		Columns: []domain.Column{{Name: "n", Type: "UINT32", Unsigned: true}},
		Rows:    nil,
	}

	res := MarshalResult(in)
	assert.Equal(t, flagUnsigned, res.Fields[0].Flags&flagUnsigned)
	assert.Equal(t, charsetUTF8, res.Fields[0].Charset)
}

func TestMarshalResult_ZeroRowWrite(t *testing.T) {
	res := MarshalResult(&domain.Result{})

	assert.Equal(t, "0", res.RowsAffected)
	assert.Equal(t, "0", res.InsertID)
	assert.Nil(t, res.Fields)
	assert.Nil(t, res.Rows)
}
