package web

import "net/http"

// Router wraps http.ServeMux and sends unmatched requests to a not-found handler.
type Router struct {
	mux      *http.ServeMux
	notFound http.Handler
}

// NewRouter creates a Router that answers unmatched requests with http.NotFound.
func NewRouter() *Router {
	return &Router{
		mux:      http.NewServeMux(),
		notFound: http.NotFoundHandler(),
	}
}

// NotFound sets the handler for requests no pattern matches.
func (r *Router) NotFound(h http.Handler) {
	r.notFound = h
}

// Handle registers a handler for the given pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for the given pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// ServeHTTP dispatches to the matching pattern or the not-found handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.mux.Handler(req); pattern == "" {
		r.notFound.ServeHTTP(w, req)
		return
	}
	r.mux.ServeHTTP(w, req)
}
