package favorites

import (
	"errors"
	"net/http"
)

// Domain errors for favorite operations. Messages are returned to clients verbatim.
var (
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrForbidden        = errors.New("Forbidden: user_id does not match the signed-in user")
	ErrUserIDRequired   = errors.New("user_id required")
	ErrPromptIDRequired = errors.New("prompt_id required (number)")
	ErrAdd              = errors.New("Failed to add favorite")
	ErrRemove           = errors.New("Failed to remove favorite")
	ErrList             = errors.New("Failed to fetch favorites")
)

// MapHTTPStatus maps favorite domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrUserIDRequired) || errors.Is(err, ErrPromptIDRequired) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
