package github

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches a StatusError with status 404 via errors.Is
var ErrNotFound = errors.New("not found")

// StatusError is returned for any non-2xx API response
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether the error matches a sentinel kind
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
