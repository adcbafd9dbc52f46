// Package web provides infrastructure for serving server-rendered pages with
// Go templates, embedded static assets, and not-found fallback routing.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a page template and its document title.
type ViewDef struct {
	Name     string
	Template string
	Title    string
}

// Account holds the identity provider's hosted page URLs and the signed-in user, if any.
type Account struct {
	UserID  string
	SignIn  string
	SignUp  string
	SignOut string
}

// SignedIn reports whether the request carried a verified session.
func (a Account) SignedIn() bool {
	return a.UserID != ""
}

// ViewData contains the data passed to page templates during rendering.
// APIBase lets client scripts build API URLs via {{ .APIBase }}.
type ViewData struct {
	Title   string
	Page    string
	APIBase string
	Account Account
	Data    any
}

// TemplateSet holds pre-parsed templates, one layout clone per view.
type TemplateSet struct {
	layout string
	views  map[string]*template.Template
	defs   map[string]ViewDef
}

// NewTemplateSet parses the layouts matching layoutGlob and clones them for each
// view under viewDir. Parsing happens once so template errors fail at startup.
func NewTemplateSet(fsys fs.FS, layout, layoutGlob, viewDir string, funcs template.FuncMap, views ...ViewDef) (*TemplateSet, error) {
	layouts, err := template.New(layout).Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS, err := fs.Sub(fsys, viewDir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		layout: layout,
		views:  make(map[string]*template.Template, len(views)),
		defs:   make(map[string]ViewDef, len(views)),
	}

	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewFS, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		ts.views[v.Name] = t
		ts.defs[v.Name] = v
	}

	return ts, nil
}

// View returns the definition registered under name.
func (ts *TemplateSet) View(name string) (ViewDef, bool) {
	v, ok := ts.defs[name]
	return v, ok
}

// Render executes the layout for the named view and writes it with status.
// Output is buffered so a template failure never produces a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, name string, data ViewData) error {
	t, ok := ts.views[name]
	if !ok {
		return fmt.Errorf("view not found: %s", name)
	}

	if data.Title == "" {
		data.Title = ts.defs[name].Title
	}
	if data.Page == "" {
		data.Page = name
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, ts.layout, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
