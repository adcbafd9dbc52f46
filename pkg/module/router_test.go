package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptcraft/pkg/module"
)

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func newRouter() *module.Router {
	api := http.NewServeMux()
	api.HandleFunc("GET /prompts", writeBody("api"))

	router := module.NewRouter()
	router.Mount(module.New("/api", api))
	router.HandleNative("GET /healthz", writeBody("ok"))
	return router
}

func TestRouterDispatch(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{"module", "/api/prompts", "api"},
		{"native", "/healthz", "ok"},
		{"trailing slash", "/api/prompts/", "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rec.Code)
			}
			if body := rec.Body.String(); body != tt.wantBody {
				t.Errorf("body: got %s, want %s", body, tt.wantBody)
			}
		})
	}
}

func TestRouterWithoutFallback(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/browse", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestRouterFallback(t *testing.T) {
	router := newRouter()
	router.Fallback(writeBody("pages"))

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{"unmatched path", "/browse", "pages"},
		{"root", "/", "pages"},
		{"native still wins", "/healthz", "ok"},
		{"module still wins", "/api/prompts", "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if body := rec.Body.String(); body != tt.wantBody {
				t.Errorf("body: got %s, want %s", body, tt.wantBody)
			}
		})
	}
}

func TestRouterModuleNotFound(t *testing.T) {
	router := newRouter()
	router.Fallback(writeBody("pages"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404 from the module", rec.Code)
	}
}
