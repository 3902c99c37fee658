package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekangelov/planetscale-go/auth"
	"github.com/alekangelov/planetscale-go/pkg/config"
	"github.com/alekangelov/planetscale-go/pkg/wire"
	"github.com/alekangelov/planetscale-go/server/datasource"
)

func setupTestDeps(t *testing.T) *ToolDeps {
	t.Helper()

	poolCfg := config.PoolConfig{
		MaxOpenConns:    2,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		ConnectTimeout:  5 * time.Second,
	}
	rawURL := "sqlite://" + filepath.Join(t.TempDir(), "mcp_test.db")
	pool, err := datasource.Open(context.Background(), rawURL, poolCfg)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return &ToolDeps{
		Creds: auth.Credentials{Username: "admin", Password: "secret"},
		Pool:  pool,
	}
}

func callToolRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: arguments,
		},
	}
}

func TestHandleQuery_Unauthorized(t *testing.T) {
	deps := setupTestDeps(t)

	result, err := deps.HandleQuery(context.Background(),
		callToolRequest(map[string]interface{}{"sql": "SELECT 1"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleQuery_MissingSQL(t *testing.T) {
	deps := setupTestDeps(t)

	result, err := deps.HandleQuery(WithAuthorized(context.Background()),
		callToolRequest(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleQuery_Select(t *testing.T) {
	deps := setupTestDeps(t)
	ctx := WithAuthorized(context.Background())

	result, err := deps.HandleQuery(ctx,
		callToolRequest(map[string]interface{}{"sql": "SELECT 1"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var res wire.ResultRes
	require.NoError(t, json.Unmarshal([]byte(text.Text), &res))
	require.Len(t, res.Fields, 1)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"1"}, res.Rows[0].Lengths)
}

func TestHandleQuery_Write(t *testing.T) {
	deps := setupTestDeps(t)
	ctx := WithAuthorized(context.Background())

	_, err := deps.HandleQuery(ctx,
		callToolRequest(map[string]interface{}{"sql": "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, v INTEGER)"}))
	require.NoError(t, err)

	result, err := deps.HandleQuery(ctx,
		callToolRequest(map[string]interface{}{"sql": "INSERT INTO t (v) VALUES (7)"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var res wire.ResultRes
	require.NoError(t, json.Unmarshal([]byte(text.Text), &res))
	assert.Equal(t, "1", res.RowsAffected)
	assert.Equal(t, "1", res.InsertID)
	assert.Nil(t, res.Fields)
}

func TestHandleQuery_EngineError(t *testing.T) {
	deps := setupTestDeps(t)

	result, err := deps.HandleQuery(WithAuthorized(context.Background()),
		callToolRequest(map[string]interface{}{"sql": "SELECT * FROM missing"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	// Failed tool calls still release their connection.
	assert.Equal(t, 0, deps.Pool.Stats().InUse)
}
