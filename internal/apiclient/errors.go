package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors raised locally before any request is sent.
var ErrValidation = errors.New("validation failed")

// StatusError is returned when the REST service answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Required builds the validation error for an entity whose mandatory fields
// are absent. It returns nil when nothing is missing.
func Required(entity string, missing ...string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s required", ErrValidation, entity, strings.Join(missing, ", "))
}
