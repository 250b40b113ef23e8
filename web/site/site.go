// Package site provides the storefront's embedded view templates and static assets
// and binds them to the route table.
package site

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/storefront/internal/routes"
	"github.com/JaimeStill/storefront/pkg/web"
)

//go:embed layouts/*
var layoutFS embed.FS

//go:embed views/*
var viewFS embed.FS

//go:embed static
var staticFS embed.FS

const layout = "site.html"

// ViewDefs returns one view definition per route, rendering <view>.html.
func ViewDefs() []web.ViewDef {
	rs := routes.Routes()
	defs := make([]web.ViewDef, 0, len(rs))
	for _, r := range rs {
		defs = append(defs, viewDef(r))
	}
	return defs
}

func viewDef(r routes.Route) web.ViewDef {
	return web.ViewDef{Route: r.Path, Template: r.View + ".html", Title: r.Title}
}

// Handler serves every storefront view plus the static assets.
type Handler struct {
	templates *web.TemplateSet
	static    http.Handler
	name      string
}

// NewHandler parses all view templates up front; a missing or malformed
// template is reported here rather than on first request.
func NewHandler(name, basePath string, logger *slog.Logger) (*Handler, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"layouts/*.html",
		"views",
		basePath,
		ViewDefs(),
		logger,
	)
	if err != nil {
		return nil, err
	}

	static, err := web.Static(staticFS, "static", "/static/")
	if err != nil {
		return nil, err
	}

	return &Handler{templates: ts, static: static, name: name}, nil
}

// Register mounts the view routes and /static/ on mux. Unmatched paths fall
// through to the mux's own not-found handling.
func (h *Handler) Register(mux *http.ServeMux) {
	routes.Register(mux, func(r routes.Route) http.HandlerFunc {
		return h.templates.ViewHandler(layout, viewDef(r), h.name)
	})
	mux.Handle("GET /static/", h.static)
}

// Router returns a mux with only the site routes registered.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}
