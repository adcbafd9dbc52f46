package web

import (
	"io/fs"
	"net/http"
)

// StaticServer serves files from subdir of fsys under urlPrefix.
// Directory listings are disabled and responses carry the given Cache-Control value.
func StaticServer(fsys fs.FS, subdir, urlPrefix, cacheControl string) (http.Handler, error) {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return nil, err
	}

	files := http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == urlPrefix || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		if cacheControl != "" {
			w.Header().Set("Cache-Control", cacheControl)
		}
		files.ServeHTTP(w, r)
	}), nil
}
