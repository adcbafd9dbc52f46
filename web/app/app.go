// Package app serves the server-rendered PromptCraft pages and their static assets.
package app

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/favorites"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
	"github.com/JaimeStill/promptcraft/internal/prompts"
	"github.com/JaimeStill/promptcraft/pkg/formatting"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/middleware"
	"github.com/JaimeStill/promptcraft/pkg/web"
)

//go:embed templates static
var files embed.FS

// StaticPrefix is the URL path static assets are served under.
const StaticPrefix = "/static/"

var views = []web.ViewDef{
	{Name: "home", Template: "home.html", Title: "PromptCraft"},
	{Name: "browse", Template: "browse.html", Title: "Browse Prompts"},
	{Name: "share", Template: "share.html", Title: "Share a Prompt"},
	{Name: "favorites", Template: "favorites.html", Title: "My Favorites"},
	{Name: "not-found", Template: "not-found.html", Title: "Page Not Found"},
}

var funcs = template.FuncMap{
	"date":  formatDate,
	"bytes": formatting.FormatBytes,
	"card":  newCardView,
}

// cardView bundles what the prompt-card partial needs from its caller.
type cardView struct {
	Card               Card
	Account            web.Account
	RemoveOnUnfavorite bool
}

func newCardView(c Card, account web.Account, removeOnUnfavorite bool) cardView {
	return cardView{Card: c, Account: account, RemoveOnUnfavorite: removeOnUnfavorite}
}

// Systems are the domain operations the pages read from.
type Systems struct {
	Prompts   prompts.System
	Favorites favorites.System
	Identity  identity.System
}

// App renders the site's pages.
type App struct {
	templates    *web.TemplateSet
	sys          Systems
	apiBase      string
	maxBodyBytes int64
	logger       *slog.Logger
}

// New parses the embedded templates and returns the page set.
func New(sys Systems, apiBase string, maxBodyBytes int64, logger *slog.Logger) (*App, error) {
	ts, err := web.NewTemplateSet(files, "app", "templates/layouts/*.html", "templates/views", funcs, views...)
	if err != nil {
		return nil, err
	}
	return &App{
		templates:    ts,
		sys:          sys,
		apiBase:      apiBase,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With("module", "app"),
	}, nil
}

// NewHandler builds the page handler from the service configuration and infrastructure.
// Requests are logged, counted, and resolved to a session before reaching a page.
func NewHandler(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	a, err := New(Systems{
		Prompts:   prompts.New(infra.Store, infra.Logger),
		Favorites: favorites.New(infra.Store, infra.Logger),
		Identity:  infra.Identity,
	}, cfg.API.BasePath, cfg.API.MaxBodySizeBytes(), infra.Logger)
	if err != nil {
		return nil, err
	}

	mw := middleware.New()
	mw.Use(middleware.Logger(a.logger))
	mw.Use(infra.Metrics.Middleware("app"))
	mw.Use(infra.Identity.Middleware())

	router, err := a.Router()
	if err != nil {
		return nil, err
	}
	return mw.Apply(router), nil
}

// Router registers every page and the static asset server.
// Unknown paths render the not-found page.
func (a *App) Router() (*web.Router, error) {
	static, err := web.StaticServer(files, "static", StaticPrefix, "public, max-age=3600")
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()
	r.Handle("GET "+StaticPrefix, static)
	r.HandleFunc("GET /{$}", a.home)
	r.HandleFunc("GET /browse", a.browse)
	r.HandleFunc("GET /share", a.share)
	r.HandleFunc("GET /favorites", a.favorites)
	r.NotFound(http.HandlerFunc(a.notFound))
	return r, nil
}

func (a *App) viewData(r *http.Request, data any) web.ViewData {
	links := a.sys.Identity.Links()
	userID, _ := identity.UserID(r.Context())
	return web.ViewData{
		APIBase: a.apiBase,
		Account: web.Account{
			UserID:  userID,
			SignIn:  links.SignIn,
			SignUp:  links.SignUp,
			SignOut: links.SignOut,
		},
		Data: data,
	}
}

func (a *App) render(w http.ResponseWriter, r *http.Request, status int, view string, data any) {
	if err := a.templates.Render(w, status, view, a.viewData(r, data)); err != nil {
		a.logger.Error("render failed", "view", view, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// formatDate renders stored timestamps as "Jan 2, 2006", passing unrecognized values through.
func formatDate(s string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}
