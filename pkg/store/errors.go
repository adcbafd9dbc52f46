package store

import (
	"errors"
	"fmt"
)

// ErrUpstream indicates the store was unreachable or rejected a statement.
var ErrUpstream = errors.New("store request failed")

// Error describes a failed store round trip. Status is the query service's
// HTTP status (zero for transport and database-driver failures) and Detail is
// the best-effort failure text relayed to clients.
type Error struct {
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", ErrUpstream, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrUpstream, e.Detail)
}

// Unwrap exposes both ErrUpstream and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// Detail extracts the relayable failure text from err, or "" when err is not a store error.
func Detail(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Detail
	}
	return ""
}
