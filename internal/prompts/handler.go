package prompts

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptcraft/pkg/handlers"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/routes"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys          System
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger.With("handler", "prompts"),
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/prompts",
		Tags:    []string{"Prompts"},
		Schemas: schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
		},
	}
}

// List returns every prompt with its favorite count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.sys.List(r.Context())
	if err != nil {
		h.respondError(w, err, ErrList)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompts)
}

// Create shares a new prompt as the signed-in user.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	var body struct {
		Text *string `json:"text"`
	}
	handlers.LimitBody(w, r, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == nil {
		if !handlers.RespondBodyTooLarge(w, h.logger, err) {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrTextRequired)
		}
		return
	}

	if err := h.sys.Create(r.Context(), userID, CreateCommand{Text: *body.Text}); err != nil {
		h.respondError(w, err, ErrCreate)
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
	for _, target := range []error{ErrUnauthorized, ErrTextRequired} {
		if errors.Is(err, target) {
			return target
		}
	}
	return err
}
