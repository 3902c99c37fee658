package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the gateway's startup configuration. It is constructed once
// from the environment and shared by reference; nothing mutates it after
// startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Pool     PoolConfig
	MCP      MCPConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig carries the backing store URL and the expected basic-auth
// credentials.
type DatabaseConfig struct {
	ConnectionURL string
	Username      string
	Password      string
}

// PoolConfig bounds the shared connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// MCPConfig configures the optional MCP tool server.
type MCPConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// DefaultConfig returns the configuration defaults applied before the
// environment is consulted.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Pool: PoolConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300 * time.Second,
			ConnMaxIdleTime: 60 * time.Second,
			ConnectTimeout:  10 * time.Second,
		},
		MCP: MCPConfig{
			Host: "0.0.0.0",
			Port: 3001,
		},
	}
}

// FromEnv builds a Config from environment variables on top of the
// defaults: DATABASE_URL, PS_USERNAME, PS_PASSWORD, HOST, PORT, the
// POOL_* knobs and MCP_ENABLED/MCP_HOST/MCP_PORT.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()

	cfg.Database.ConnectionURL = os.Getenv("DATABASE_URL")
	cfg.Database.Username = os.Getenv("PS_USERNAME")
	cfg.Database.Password = os.Getenv("PS_PASSWORD")

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if err := envInt("PORT", &cfg.Server.Port); err != nil {
		return nil, err
	}
	if err := envInt("POOL_MAX_OPEN", &cfg.Pool.MaxOpenConns); err != nil {
		return nil, err
	}
	if err := envInt("POOL_MAX_IDLE", &cfg.Pool.MaxIdleConns); err != nil {
		return nil, err
	}
	if err := envSeconds("POOL_CONN_LIFETIME", &cfg.Pool.ConnMaxLifetime); err != nil {
		return nil, err
	}
	if err := envSeconds("POOL_CONN_TIMEOUT", &cfg.Pool.ConnectTimeout); err != nil {
		return nil, err
	}

	cfg.MCP.Enabled = os.Getenv("MCP_ENABLED") == "true"
	if host := os.Getenv("MCP_HOST"); host != "" {
		cfg.MCP.Host = host
	}
	if err := envInt("MCP_PORT", &cfg.MCP.Port); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required settings are present and sane.
func (c *Config) Validate() error {
	if c.Database.ConnectionURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Database.Username == "" {
		return fmt.Errorf("PS_USERNAME is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Pool.MaxOpenConns <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", c.Pool.MaxOpenConns)
	}
	return nil
}

// ListenAddress returns the host:port pair for the HTTP listener.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MCPListenAddress returns the host:port pair for the MCP listener.
func (c *Config) MCPListenAddress() string {
	return fmt.Sprintf("%s:%d", c.MCP.Host, c.MCP.Port)
}

func envInt(name string, dst *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, raw)
	}
	*dst = v
	return nil
}

func envSeconds(name string, dst *time.Duration) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", name, raw)
	}
	*dst = time.Duration(v) * time.Second
	return nil
}
