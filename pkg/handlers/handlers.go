// Package handlers provides JSON response helpers shared by API handlers.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptcraft/pkg/formatting"
)

// ErrorResponse is the JSON body written for failed requests.
// Detail carries the upstream failure text when one is available.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Success is the JSON body written for accepted mutations.
var Success = map[string]bool{"success": true}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as a JSON error body.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	RespondErrorDetail(w, logger, status, err, "")
}

// RespondErrorDetail logs err and writes it as a JSON error body with detail attached.
// Server errors log at error level and client errors at warn.
func RespondErrorDetail(w http.ResponseWriter, logger *slog.Logger, status int, err error, detail string) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, "request failed", "status", status, "error", err, "detail", detail)

	RespondJSON(w, status, ErrorResponse{Error: err.Error(), Detail: detail})
}

// LimitBody caps r.Body at limit bytes.
func LimitBody(w http.ResponseWriter, r *http.Request, limit int64) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
}

// RespondBodyTooLarge writes a 413 and reports true when err came from a body
// exceeding its LimitBody cap.
func RespondBodyTooLarge(w http.ResponseWriter, logger *slog.Logger, err error) bool {
	var mbe *http.MaxBytesError
	if !errors.As(err, &mbe) {
		return false
	}
	RespondError(w, logger, http.StatusRequestEntityTooLarge,
		fmt.Errorf("request body exceeds %s", formatting.FormatBytes(mbe.Limit)))
	return true
}
