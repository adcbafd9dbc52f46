// Package prompts implements the shared prompt catalog.
// It provides types, data access, and HTTP handlers for listing every
// submitted prompt and for signed-in users to submit new ones.
package prompts

import (
	"strings"
	"unicode/utf8"
)

// MinTextLength is the minimum number of characters a prompt's text must hold.
const MinTextLength = 10

// Prompt is a shared prompt with the number of times it has been favorited.
// DateCreated is carried as text so every store backend decodes uniformly.
type Prompt struct {
	ID            int64  `json:"id"`
	UUID          string `json:"uuid"`
	Text          string `json:"text"`
	CreatorUserID string `json:"creator_user_id"`
	DateCreated   string `json:"date_created"`
	FavoriteCount int64  `json:"favorite_count"`
}

// CreateCommand carries the data needed to share a new prompt.
type CreateCommand struct {
	Text string `json:"text"`
}

// Validate reports ErrTextRequired when the text is shorter than MinTextLength characters.
func (c CreateCommand) Validate() error {
	if utf8.RuneCountInString(c.Text) < MinTextLength {
		return ErrTextRequired
	}
	return nil
}

// Excerpt returns the first n characters of the prompt text, marking truncation with an ellipsis.
func (p Prompt) Excerpt(n int) string {
	if utf8.RuneCountInString(p.Text) <= n {
		return p.Text
	}
	runes := []rune(p.Text)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
