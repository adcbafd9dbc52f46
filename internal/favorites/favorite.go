// Package favorites implements per-user prompt bookmarks.
// Favorites are stored as (user, prompt) rows; favoriting the same prompt
// twice stores two rows and unfavoriting removes every row for the pair.
package favorites

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Command identifies the prompt a favorite operation targets.
type Command struct {
	PromptID int64 `json:"prompt_id"`
}

// ParseCommand decodes a JSON body whose prompt_id must be a positive integer
// number. Strings, fractions, and missing values return ErrPromptIDRequired.
// Integral values written with a fraction part, such as 7.0, are accepted.
func ParseCommand(r io.Reader) (Command, error) {
	var body map[string]any

	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrPromptIDRequired, err)
	}

	n, ok := body["prompt_id"].(json.Number)
	if !ok {
		return Command{}, ErrPromptIDRequired
	}

	id, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || f >= math.MaxInt64 {
			return Command{}, ErrPromptIDRequired
		}
		id = int64(f)
	}
	if id <= 0 {
		return Command{}, ErrPromptIDRequired
	}

	return Command{PromptID: id}, nil
}
