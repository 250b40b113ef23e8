package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"
)

// Static returns a handler serving files from subdir of fsys under prefix.
// Directory listings are disabled.
func Static(fsys fs.FS, subdir, prefix string) (http.Handler, error) {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return nil, fmt.Errorf("static subdir %s: %w", subdir, err)
	}

	files := http.FileServer(http.FS(sub))
	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})), nil
}
