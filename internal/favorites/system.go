package favorites

import (
	"context"

	"github.com/JaimeStill/promptcraft/internal/prompts"
)

// System defines the public contract for favorite domain operations.
type System interface {
	Handler(maxBodyBytes int64, publicLookup bool) *Handler

	// ListByUser returns the prompts userID has favorited, most recent favorite first.
	ListByUser(ctx context.Context, userID string) ([]prompts.Prompt, error)
	// Add records a favorite of promptID for userID.
	Add(ctx context.Context, userID string, promptID int64) error
	// Remove deletes every favorite of promptID held by userID.
	Remove(ctx context.Context, userID string, promptID int64) error
}
