// Package routes holds the storefront route table: the fixed mapping from
// request path to the view template rendered for it.
package routes

import "net/http"

// Route associates a request path with the view that renders it.
type Route struct {
	Path  string
	View  string
	Title string
}

var table = []Route{
	{Path: "/", View: "index", Title: "Home"},
	{Path: "/about", View: "about", Title: "About"},
	{Path: "/shop", View: "shop", Title: "Shop"},
	{Path: "/blog", View: "blog", Title: "Blog"},
	{Path: "/cart", View: "cart", Title: "Cart"},
	{Path: "/checkout", View: "checkout", Title: "Checkout"},
	{Path: "/contact", View: "contact", Title: "Contact"},
	{Path: "/services", View: "services", Title: "Services"},
	{Path: "/thankyou", View: "thankyou", Title: "Thank You"},
}

var byPath = index(table)

func index(rs []Route) map[string]Route {
	m := make(map[string]Route, len(rs))
	for _, r := range rs {
		if _, dup := m[r.Path]; dup {
			panic("routes: duplicate path " + r.Path)
		}
		m[r.Path] = r
	}
	return m
}

// Routes returns a copy of the route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Resolve returns the view registered for an exact path.
// Unknown paths report false; they are left to the mux's not-found handling.
func Resolve(path string) (string, bool) {
	r, ok := byPath[path]
	if !ok {
		return "", false
	}
	return r.View, true
}

// Lookup returns the full route registered for an exact path.
func Lookup(path string) (Route, bool) {
	r, ok := byPath[path]
	return r, ok
}

// Pattern returns the ServeMux pattern for the route. The root route is
// anchored with {$} so it does not match every unregistered path.
func Pattern(r Route) string {
	if r.Path == "/" {
		return "GET /{$}"
	}
	return "GET " + r.Path
}

// Register binds every route in the table to the handler built for it.
func Register(mux *http.ServeMux, handler func(Route) http.HandlerFunc) {
	for _, r := range table {
		mux.HandleFunc(Pattern(r), handler(r))
	}
}
