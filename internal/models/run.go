package models

// WorkflowRun represents a GitHub Actions workflow run
type WorkflowRun struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	HeadSHA      string        `json:"head_sha"`
	Status       string        `json:"status"`
	Conclusion   string        `json:"conclusion"`
	HTMLURL      string        `json:"html_url"`
	RunAttempt   int           `json:"run_attempt"`
	PullRequests []PullRequest `json:"pull_requests"`
}

// PullRequest represents a PR reference. Only Number is needed to address comments.
type PullRequest struct {
	ID      int64  `json:"id"`
	Number  int    `json:"number"`
	URL     string `json:"url"`
	HTMLURL string `json:"html_url,omitempty"`
}

// CommentRequest is the payload for creating an issue comment
type CommentRequest struct {
	Body string `json:"body"`
}
