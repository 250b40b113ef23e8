package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/server"
	"github.com/JaimeStill/storefront/pkg/logging"
)

// Server wires configuration, logging, routes, and the HTTP listener.
type Server struct {
	logger *slog.Logger
	http   *server.Server
}

// NewServer builds the full handler stack from cfg. Templates are parsed here,
// so a broken view fails startup.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.New(&cfg.Logging)

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
		"site", cfg.Site.Name,
	)

	return &Server{
		logger: logger,
		http:   server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, logger),
	}, nil
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.http.Run(ctx)
}

func buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	mux, err := buildRouter(cfg, logger)
	if err != nil {
		return nil, err
	}
	return buildMiddleware(logger).Apply(mux), nil
}
