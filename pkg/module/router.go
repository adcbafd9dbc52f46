package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment.
// Unmatched paths go to a native ServeMux, and anything it cannot route
// goes to the fallback handler when one is set.
type Router struct {
	modules  map[string]*Module
	native   *http.ServeMux
	fallback http.Handler
}

// NewRouter creates a Router with no modules and an empty native mux.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module to handle requests matching its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Fallback sets the handler for requests matching neither a module nor a native pattern.
func (r *Router) Fallback(h http.Handler) {
	r.fallback = h
}

// ServeHTTP dispatches to the matching module, native pattern, or fallback.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)

	if m, ok := r.modules[extractPrefix(path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.fallback != nil {
		if _, pattern := r.native.Handler(req); pattern == "" {
			r.fallback.ServeHTTP(w, req)
			return
		}
	}

	r.native.ServeHTTP(w, req)
}

func extractPrefix(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
