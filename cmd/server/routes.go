package main

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/web/site"
)

func buildRouter(cfg *config.Config, logger *slog.Logger) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	siteHandler, err := site.NewHandler(cfg.Site.Name, "", logger)
	if err != nil {
		return nil, err
	}
	siteHandler.Register(mux)

	return mux, nil
}
