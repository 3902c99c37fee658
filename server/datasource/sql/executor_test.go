package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRowSet(t *testing.T) {
	rowSet := []string{
		"SELECT 1",
		"  select * from t",
		"SHOW TABLES",
		"DESCRIBE t",
		"DESC t",
		"EXPLAIN SELECT 1",
		"WITH cte AS (SELECT 1) SELECT * FROM cte",
		"VALUES (1), (2)",
		"PRAGMA table_info(t)",
	}
	for _, q := range rowSet {
		assert.True(t, isRowSet(q), q)
	}

	writes := []string{
		"INSERT INTO t VALUES (1)",
		"UPDATE t SET a = 1",
		"DELETE FROM t",
		"CREATE TABLE t (id INT)",
		"DROP TABLE t",
		"",
		"DESCENDING", // not DESC followed by a space
	}
	for _, q := range writes {
		assert.False(t, isRowSet(q), q)
	}
}

func TestEncodeValue(t *testing.T) {
	assert.True(t, encodeValue(nil).Null)
	assert.Equal(t, []byte("abc"), encodeValue("abc").Data)
	assert.Equal(t, []byte{0x00, 0xff}, encodeValue([]byte{0x00, 0xff}).Data)
	assert.Equal(t, []byte("-42"), encodeValue(int64(-42)).Data)
	assert.Equal(t, []byte("1.5"), encodeValue(float64(1.5)).Data)
	assert.Equal(t, []byte("1"), encodeValue(true).Data)
	assert.Equal(t, []byte("0"), encodeValue(false).Data)
}
