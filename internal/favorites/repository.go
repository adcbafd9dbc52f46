package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/promptcraft/internal/prompts"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

type repo struct {
	store  store.System
	logger *slog.Logger
}

// New creates a favorite repository implementing the System interface.
func New(s store.System, logger *slog.Logger) System {
	return &repo{
		store:  s,
		logger: logger.With("system", "favorites"),
	}
}

func (r *repo) Handler(maxBodyBytes int64, publicLookup bool) *Handler {
	return NewHandler(r, r.logger, maxBodyBytes, publicLookup)
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]prompts.Prompt, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	favorites, err := store.QueryAs[prompts.Prompt](ctx, r.store, listStatement(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrList, err)
	}
	return favorites, nil
}

func (r *repo) Add(ctx context.Context, userID string, promptID int64) error {
	if err := validate(userID, promptID); err != nil {
		return err
	}

	id := uuid.New().String()
	if err := r.store.Exec(ctx, insertStatement(id, userID, promptID)); err != nil {
		return fmt.Errorf("%w: %w", ErrAdd, err)
	}

	r.logger.Info("favorite added", "uuid", id, "user_id", userID, "prompt_id", promptID)
	return nil
}

func (r *repo) Remove(ctx context.Context, userID string, promptID int64) error {
	if err := validate(userID, promptID); err != nil {
		return err
	}

	if err := r.store.Exec(ctx, deleteStatement(userID, promptID)); err != nil {
		return fmt.Errorf("%w: %w", ErrRemove, err)
	}

	r.logger.Info("favorite removed", "user_id", userID, "prompt_id", promptID)
	return nil
}

func validate(userID string, promptID int64) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if promptID <= 0 {
		return ErrPromptIDRequired
	}
	return nil
}
