package app

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/promptcraft/internal/favorites"
	"github.com/JaimeStill/promptcraft/internal/prompts"
	"github.com/JaimeStill/promptcraft/pkg/identity"
)

const (
	latestCount   = 3
	excerptLength = 140
)

// Card is a prompt as rendered in a list, with the viewer's favorite state.
type Card struct {
	prompts.Prompt
	Favorited bool
}

type homeData struct {
	Latest []prompts.Prompt
}

type listData struct {
	Cards []Card
	Error string
}

type shareData struct {
	MinLength    int
	MaxBodyBytes int64
}

func (a *App) home(w http.ResponseWriter, r *http.Request) {
	data := homeData{}
	if list, err := a.sys.Prompts.List(r.Context()); err != nil {
		a.logger.Warn("latest prompts unavailable", "error", err)
	} else {
		data.Latest = list[:min(latestCount, len(list))]
	}
	a.render(w, r, http.StatusOK, "home", data)
}

func (a *App) browse(w http.ResponseWriter, r *http.Request) {
	userID, signedIn := identity.UserID(r.Context())

	cards, err := a.loadBrowse(r.Context(), userID, signedIn)
	if err != nil {
		a.logger.Error("browse load failed", "error", err)
		a.render(w, r, http.StatusInternalServerError, "browse", listData{Error: prompts.ErrList.Error()})
		return
	}

	a.render(w, r, http.StatusOK, "browse", listData{Cards: cards})
}

// loadBrowse fetches every prompt and, for a signed-in viewer, their favorites concurrently.
func (a *App) loadBrowse(ctx context.Context, userID string, signedIn bool) ([]Card, error) {
	var all, favorited []prompts.Prompt

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := a.sys.Prompts.List(ctx)
		all = list
		return err
	})
	if signedIn {
		g.Go(func() error {
			list, err := a.sys.Favorites.ListByUser(ctx, userID)
			favorited = list
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make(map[int64]bool, len(favorited))
	for _, p := range favorited {
		ids[p.ID] = true
	}

	cards := make([]Card, len(all))
	for i, p := range all {
		cards[i] = Card{Prompt: p, Favorited: ids[p.ID]}
	}
	return cards, nil
}

func (a *App) share(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "share", shareData{
		MinLength:    prompts.MinTextLength,
		MaxBodyBytes: a.maxBodyBytes,
	})
}

func (a *App) favorites(w http.ResponseWriter, r *http.Request) {
	userID, signedIn := identity.UserID(r.Context())
	if !signedIn {
		a.render(w, r, http.StatusOK, "favorites", listData{})
		return
	}

	list, err := a.sys.Favorites.ListByUser(r.Context(), userID)
	if err != nil {
		a.logger.Error("favorites load failed", "error", err)
		a.render(w, r, http.StatusInternalServerError, "favorites", listData{Error: favorites.ErrList.Error()})
		return
	}

	cards := make([]Card, len(list))
	for i, p := range list {
		cards[i] = Card{Prompt: p, Favorited: true}
	}
	a.render(w, r, http.StatusOK, "favorites", listData{Cards: cards})
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusNotFound, "not-found", nil)
}
