package prompts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/promptcraft/pkg/store"
)

type repo struct {
	store  store.System
	logger *slog.Logger
}

// New creates a prompt repository implementing the System interface.
func New(s store.System, logger *slog.Logger) System {
	return &repo{
		store:  s,
		logger: logger.With("system", "prompts"),
	}
}

func (r *repo) Handler(maxBodyBytes int64) *Handler {
	return NewHandler(r, r.logger, maxBodyBytes)
}

func (r *repo) List(ctx context.Context) ([]Prompt, error) {
	prompts, err := store.QueryAs[Prompt](ctx, r.store, listStatement())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrList, err)
	}
	return prompts, nil
}

func (r *repo) Create(ctx context.Context, userID string, cmd CreateCommand) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := r.store.Exec(ctx, insertStatement(id, cmd.Text, userID)); err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}

	r.logger.Info("prompt created", "uuid", id, "creator_user_id", userID)
	return nil
}
