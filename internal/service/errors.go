package service

import (
	"errors"
	"fmt"

	"github.com/ryo246912/gh-failure-summary/internal/github"
)

// PublishError means the summary was built but posting it failed
type PublishError struct {
	PRNumber int
	Err      error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to post comment to PR #%d: %v", e.PRNumber, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of the failed post, or 0 for transport errors
func (e *PublishError) StatusCode() int {
	var statusErr *github.StatusError
	if errors.As(e.Err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// ResponseText returns the body of the failed post, or the error text for transport errors
func (e *PublishError) ResponseText() string {
	var statusErr *github.StatusError
	if errors.As(e.Err, &statusErr) {
		return statusErr.Body
	}
	return e.Err.Error()
}
