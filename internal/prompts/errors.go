package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations. Messages are returned to clients verbatim.
var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrTextRequired = errors.New("Prompt text required (min 10 chars)")
	ErrCreate       = errors.New("Failed to create prompt")
	ErrList         = errors.New("Failed to fetch prompts")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrTextRequired) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
