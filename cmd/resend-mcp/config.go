package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/resend-mcp/pkg/logger"
	"github.com/dmitrymomot/resend-mcp/pkg/mailer/resend"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Resend resend.Config
	Logger logger.Config
	Server ServerConfig
}

// ServerConfig selects and tunes the MCP transport.
type ServerConfig struct {
	Transport       string        `env:"MCP_TRANSPORT" envDefault:"stdio"`
	Address         string        `env:"MCP_HTTP_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// loadDotenv loads variables from path into the process environment.
// A missing file is not an error; variables already set win.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseConfig reads Config from environ, or from the process environment when environ is nil.
func parseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
