package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/phamdv/gamestore/internal/config"
)

type apiConfig struct {
	Port            uint16        `env:"APP_PORT" default:"8080"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" default:"INFO"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
	AllowedOrigins  string        `env:"APP_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	Postgres        config.PostgresConfig
	Commerce        config.CommerceConfig
}

func (c *apiConfig) origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
