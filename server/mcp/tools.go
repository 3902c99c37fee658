package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alekangelov/planetscale-go/auth"
	"github.com/alekangelov/planetscale-go/pkg/wire"
	sqlcommon "github.com/alekangelov/planetscale-go/server/datasource/sql"
)

type contextKey string

const ctxKeyAuthorized contextKey = "gateway_authorized"

// ToolDeps holds shared dependencies for MCP tool handlers.
type ToolDeps struct {
	Creds auth.Credentials
	Pool  *sqlcommon.Pool
}

// HandleQuery executes an arbitrary SQL statement through the gateway
// pipeline and returns the marshalled result as JSON tool text.
func (d *ToolDeps) HandleQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !isAuthorized(ctx) {
		return mcp.NewToolResultError("unauthorized: send Authorization: Bearer <username>:<password>"), nil
	}

	query := request.GetString("sql", "")
	if query == "" {
		return mcp.NewToolResultError("sql parameter is required"), nil
	}

	conn, err := d.Pool.Acquire(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("acquire connection: %v", err)), nil
	}
	defer d.Pool.Release(conn)

	result, err := sqlcommon.Execute(ctx, conn, d.Pool.Dialect(), query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("execute failed: %v", err)), nil
	}

	data, err := json.Marshal(wire.MarshalResult(result))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func isAuthorized(ctx context.Context) bool {
	authorized, _ := ctx.Value(ctxKeyAuthorized).(bool)
	return authorized
}

// WithAuthorized marks a context as having passed the credential gate. Used
// by the HTTP context func and by tests.
func WithAuthorized(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyAuthorized, true)
}
