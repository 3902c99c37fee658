package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alekangelov/planetscale-go/pkg/domain"
)

// Execute runs the query text verbatim on a leased connection and returns
// the relational result. Statements whose leading keyword produces a row
// set go through QueryContext; everything else through ExecContext.
// database/sql does not expose the engine's own result discriminator for a
// generic driver, so the keyword stands in for it. Failures surface once;
// there are no retries.
func Execute(ctx context.Context, conn *sql.Conn, dialect Dialect, query string) (*domain.Result, error) {
	if isRowSet(query) {
		return executeQuery(ctx, conn, dialect, query)
	}
	return executeStmt(ctx, conn, query)
}

// isRowSet reports whether the statement's leading keyword yields rows.
func isRowSet(query string) bool {
	trimmed := strings.TrimSpace(strings.ToUpper(query))
	return strings.HasPrefix(trimmed, "SELECT") ||
		strings.HasPrefix(trimmed, "SHOW") ||
		strings.HasPrefix(trimmed, "DESCRIBE") ||
		strings.HasPrefix(trimmed, "DESC ") ||
		strings.HasPrefix(trimmed, "EXPLAIN") ||
		strings.HasPrefix(trimmed, "WITH") ||
		strings.HasPrefix(trimmed, "VALUES") ||
		strings.HasPrefix(trimmed, "TABLE ") ||
		strings.HasPrefix(trimmed, "PRAGMA")
}

func executeQuery(ctx context.Context, conn *sql.Conn, dialect Dialect, query string) (*domain.Result, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := scanColumns(rows, dialect)
	if err != nil {
		return nil, err
	}

	var data [][]domain.Value
	for rows.Next() {
		row, err := scanRow(rows, len(columns))
		if err != nil {
			return nil, err
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return &domain.Result{
		Columns: columns,
		Rows:    data,
		RowSet:  true,
	}, nil
}

func executeStmt(ctx context.Context, conn *sql.Conn, query string) (*domain.Result, error) {
	result, err := conn.ExecContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	// Drivers without insert-id or affected-row support (lib/pq) report an
	// error here; the counts stay zero in that case.
	affected, _ := result.RowsAffected()
	insertID, _ := result.LastInsertId()

	return &domain.Result{
		RowsAffected: affected,
		LastInsertID: insertID,
	}, nil
}

func scanColumns(rows *sql.Rows, dialect Dialect) ([]domain.Column, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("get column types: %w", err)
	}

	columns := make([]domain.Column, len(colTypes))
	for i, ct := range colTypes {
		label, binary, unsigned := dialect.MapColumn(ct.DatabaseTypeName())
		length, hasLength := ct.Length()
		nullable, hasNullable := ct.Nullable()
		columns[i] = domain.Column{
			Name:      ct.Name(),
			Type:      label,
			RawType:   strings.ToLower(ct.DatabaseTypeName()),
			Length:    length,
			HasLength: hasLength,
			// Only a positive NOT NULL report clears the flag.
			Nullable: nullable || !hasNullable,
			Binary:   binary,
			Unsigned: unsigned,
		}
	}
	return columns, nil
}

func scanRow(rows *sql.Rows, n int) ([]domain.Value, error) {
	values := make([]interface{}, n)
	scanTargets := make([]interface{}, n)
	for i := range values {
		scanTargets[i] = &values[i]
	}

	if err := rows.Scan(scanTargets...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	row := make([]domain.Value, n)
	for i := range values {
		row[i] = encodeValue(values[i])
	}
	return row, nil
}

// encodeValue converts a database/sql scanned value into its raw byte form,
// preserving SQL NULL as a distinct state.
func encodeValue(v interface{}) domain.Value {
	switch val := v.(type) {
	case nil:
		return domain.Value{Null: true}
	case []byte:
		return domain.Value{Data: val}
	case string:
		return domain.Value{Data: []byte(val)}
	case int64:
		return domain.Value{Data: strconv.AppendInt(nil, val, 10)}
	case float64:
		return domain.Value{Data: strconv.AppendFloat(nil, val, 'g', -1, 64)}
	case bool:
		if val {
			return domain.Value{Data: []byte("1")}
		}
		return domain.Value{Data: []byte("0")}
	case time.Time:
		return domain.Value{Data: []byte(val.Format("2006-01-02 15:04:05"))}
	default:
		return domain.Value{Data: []byte(fmt.Sprintf("%v", val))}
	}
}
