package prompts

import "context"

// System defines the public contract for prompt domain operations.
type System interface {
	Handler(maxBodyBytes int64) *Handler

	// List returns every prompt, newest first, with its favorite count.
	List(ctx context.Context) ([]Prompt, error)
	// Create shares a new prompt attributed to userID.
	Create(ctx context.Context, userID string, cmd CreateCommand) error
}
