package web_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/promptcraft/pkg/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/layouts/base.html": {Data: []byte(
			`{{ define "base" }}<title>{{ .Title }}</title><nav data-page="{{ .Page }}">{{ if .Account.SignedIn }}{{ .Account.UserID }}{{ else }}guest{{ end }}</nav>{{ template "content" . }}{{ end }}`,
		)},
		"templates/views/home.html":   {Data: []byte(`{{ define "content" }}home {{ shout .Data }}{{ end }}`)},
		"templates/views/broken.html": {Data: []byte(`{{ define "content" }}{{ .Data.Missing.Field }}{{ end }}`)},
		"static/app.js":               {Data: []byte(`console.log("hi")`)},
	}
}

var testFuncs = template.FuncMap{"shout": strings.ToUpper}

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS(), "base", "templates/layouts/*.html", "templates/views", testFuncs,
		web.ViewDef{Name: "home", Template: "home.html", Title: "Home"},
		web.ViewDef{Name: "broken", Template: "broken.html", Title: "Broken"},
	)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestRender(t *testing.T) {
	ts := newSet(t)
	rec := httptest.NewRecorder()

	err := ts.Render(rec, http.StatusOK, "home", web.ViewData{
		Account: web.Account{UserID: "user_1"},
		Data:    "hello",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{"<title>Home</title>", `data-page="home"`, "user_1", "home HELLO"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type: got %s", ct)
	}
}

func TestRenderStatusAndOverrides(t *testing.T) {
	rec := httptest.NewRecorder()
	newSet(t).Render(rec, http.StatusNotFound, "home", web.ViewData{Title: "Custom", Page: "other", Data: "x"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Custom</title>") || !strings.Contains(body, `data-page="other"`) || !strings.Contains(body, "guest") {
		t.Errorf("body: %s", body)
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusOK, "broken", web.ViewData{Data: 42}); err == nil {
		t.Fatal("expected execution error")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("partial output written: %q", rec.Body.String())
	}

	if err := ts.Render(httptest.NewRecorder(), http.StatusOK, "missing", web.ViewData{}); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestNewTemplateSetParseError(t *testing.T) {
	fsys := testFS()
	fsys["templates/views/bad.html"] = &fstest.MapFile{Data: []byte(`{{ define "content" }}{{ .Unclosed }`)}

	_, err := web.NewTemplateSet(fsys, "base", "templates/layouts/*.html", "templates/views", testFuncs,
		web.ViewDef{Name: "bad", Template: "bad.html"},
	)
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestView(t *testing.T) {
	v, ok := newSet(t).View("home")
	if !ok || v.Title != "Home" {
		t.Errorf("View(home): got %+v, %v", v, ok)
	}
}

func TestStaticServer(t *testing.T) {
	h, err := web.StaticServer(testFS(), "static", "/static/", "public, max-age=60")
	if err != nil {
		t.Fatalf("StaticServer() error = %v", err)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/static/app.js", http.StatusOK},
		{"/static/missing.js", http.StatusNotFound},
		{"/static/", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/static/app.js", nil))
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("cache control: got %s", cc)
	}
}

func TestRouter(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("default not found: got %d, want 404", rec.Code)
	}

	r.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		path string
		want int
	}{
		{"/known", http.StatusOK},
		{"/unknown", http.StatusTeapot},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("%s: got %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}
