package main

import (
	"log/slog"

	"github.com/JaimeStill/storefront/pkg/middleware"
)

// buildMiddleware creates the stack applied around every route. RequestID runs
// outermost so the logger and recovery both see the identifier.
func buildMiddleware(logger *slog.Logger) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(logger))
	mw.Use(middleware.Recover(logger))
	return mw
}
