package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alekangelov/planetscale-go/pkg/config"
	"github.com/alekangelov/planetscale-go/server/datasource"
	"github.com/alekangelov/planetscale-go/server/httpapi"
	mcpserver "github.com/alekangelov/planetscale-go/server/mcp"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("[GATEWAY] configuration error: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := datasource.Open(ctx, cfg.Database.ConnectionURL, cfg.Pool)
	if err != nil {
		log.Printf("[GATEWAY] database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	srv := httpapi.NewServer(cfg, pool)

	if cfg.MCP.Enabled {
		mcpSrv := mcpserver.NewServer(cfg, pool)
		go func() {
			if err := mcpSrv.Start(); err != nil {
				log.Printf("[MCP] server exited: %v", err)
			}
		}()
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("[HTTP] server exited: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[GATEWAY] shutdown: %v", err)
	}
	log.Printf("[GATEWAY] stopped")
}
