// Package mcp exposes the gateway's execute pipeline as an MCP tool server,
// so agent clients can run queries through the same credential gate and
// connection pool as the HTTP endpoints.
package mcp

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alekangelov/planetscale-go/auth"
	"github.com/alekangelov/planetscale-go/pkg/config"
	sqlcommon "github.com/alekangelov/planetscale-go/server/datasource/sql"
)

// Server is the MCP protocol server.
type Server struct {
	cfg   *config.Config
	creds auth.Credentials
	pool  *sqlcommon.Pool
}

// NewServer creates a new MCP server sharing the gateway's pool and
// credentials.
func NewServer(cfg *config.Config, pool *sqlcommon.Pool) *Server {
	return &Server{
		cfg: cfg,
		creds: auth.Credentials{
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
		},
		pool: pool,
	}
}

// Start starts the MCP server over streamable HTTP (blocking).
func (s *Server) Start() error {
	addr := s.cfg.MCPListenAddress()

	deps := &ToolDeps{Creds: s.creds, Pool: s.pool}

	mcpSrv := mcpserver.NewMCPServer(
		"planetscale-gateway",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	queryTool := mcp.NewTool("query",
		mcp.WithDescription("Execute a SQL statement against the backing database. Read statements return the wire-encoded result set; write statements return affected-row count and insert id."),
		mcp.WithString("sql", mcp.Description("The SQL statement to execute"), mcp.Required()),
	)

	mcpSrv.AddTool(queryTool, deps.HandleQuery)

	httpServer := mcpserver.NewStreamableHTTPServer(
		mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
		mcpserver.WithHTTPContextFunc(s.authContextFunc()),
	)

	log.Printf("[MCP] listening on %s", addr)
	return httpServer.Start(addr)
}

// authContextFunc validates "Authorization: Bearer <username>:<password>"
// against the gateway credentials and marks the context authorized.
func (s *Server) authContextFunc() mcpserver.HTTPContextFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return ctx
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ctx
		}

		username, password, _ := strings.Cut(parts[1], ":")
		if s.creds.Check(username, password) {
			ctx = WithAuthorized(ctx)
		}
		return ctx
	}
}
