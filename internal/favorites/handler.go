package favorites

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptcraft/pkg/handlers"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/routes"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

// Handler provides HTTP endpoints for favorite operations.
type Handler struct {
	sys          System
	logger       *slog.Logger
	maxBodyBytes int64
	publicLookup bool
}

// NewHandler creates a Handler. When publicLookup is set, anonymous callers may
// list any user's favorites by passing user_id.
func NewHandler(sys System, logger *slog.Logger, maxBodyBytes int64, publicLookup bool) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger.With("handler", "favorites"),
		maxBodyBytes: maxBodyBytes,
		publicLookup: publicLookup,
	}
}

// Routes returns the route group definition for favorite endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/favorites",
		Tags:    []string{"Favorites"},
		Schemas: schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "POST", Pattern: "", Handler: h.Add, OpenAPI: addOp},
			{Method: "DELETE", Pattern: "", Handler: h.Remove, OpenAPI: removeOp},
		},
	}
}

// ResolveUser determines whose favorites a listing request targets.
// Signed-in callers always read their own; a different user_id is forbidden.
func ResolveUser(sessionUser string, signedIn bool, requested string, publicLookup bool) (string, error) {
	switch {
	case signedIn && requested != "" && requested != sessionUser:
		return "", ErrForbidden
	case signedIn:
		return sessionUser, nil
	case requested == "":
		return "", ErrUserIDRequired
	case !publicLookup:
		return "", ErrUnauthorized
	}
	return requested, nil
}

// List returns the favorited prompts of the resolved user.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sessionUser, signedIn := identity.UserID(r.Context())

	userID, err := ResolveUser(sessionUser, signedIn, r.URL.Query().Get("user_id"), h.publicLookup)
	if err != nil {
		h.respondError(w, err, ErrList)
		return
	}

	favorites, err := h.sys.ListByUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, err, ErrList)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, favorites)
}

// Add favorites a prompt for the signed-in user.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.sys.Add, ErrAdd)
}

// Remove unfavorites a prompt for the signed-in user.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.sys.Remove, ErrRemove)
}

func (h *Handler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, userID string, promptID int64) error,
	operation error,
) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	handlers.LimitBody(w, r, h.maxBodyBytes)
	cmd, err := ParseCommand(r.Body)
	if err != nil {
		if !handlers.RespondBodyTooLarge(w, h.logger, err) {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrPromptIDRequired)
		}
		return
	}

	if err := apply(r.Context(), userID, cmd.PromptID); err != nil {
		h.respondError(w, err, operation)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.Success)
}

// respondError writes client errors as-is and upstream failures as the
// operation message with the store's detail attached.
func (h *Handler) respondError(w http.ResponseWriter, err, operation error) {
	status := MapHTTPStatus(err)
	if status < http.StatusInternalServerError {
		handlers.RespondError(w, h.logger, status, clientError(err))
		return
	}
	handlers.RespondErrorDetail(w, h.logger, status, operation, store.Detail(err))
}

func clientError(err error) error {
	for _, target := range []error{ErrUnauthorized, ErrForbidden, ErrUserIDRequired, ErrPromptIDRequired} {
		if errors.Is(err, target) {
			return target
		}
	}
	return err
}
