// Package web provides infrastructure for serving server-rendered views with Go templates.
// Templates are parsed once at startup so requests only execute them.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// ViewDef defines a view with its route, template file, and title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
}

// ViewData contains the data passed to templates during rendering.
// View is the template name without its extension.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Site     string
	View     string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template file.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	logger   *slog.Logger
}

// NewTemplateSet parses the layout templates and clones them for each view.
// Any parse error fails the whole set.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef, logger *slog.Logger) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("view subdir %s: %w", viewSubdir, err)
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := viewTemplates[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
		logger:   logger,
	}, nil
}

// Has reports whether a template was parsed for the given view file.
func (ts *TemplateSet) Has(name string) bool {
	_, ok := ts.views[name]
	return ok
}

// ViewHandler returns an HTTP handler that renders the given view inside layout.
func (ts *TemplateSet) ViewHandler(layout string, view ViewDef, site string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{
			Title:    view.Title,
			Site:     site,
			View:     strings.TrimSuffix(view.Template, path.Ext(view.Template)),
			BasePath: ts.basePath,
		}
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			ts.logger.Error("render view", "template", view.Template, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given view data.
// Output is buffered so a failing template never produces a partial response.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewPath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
