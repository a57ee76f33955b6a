package models

// Conclusion values reported by the Actions API
const (
	ConclusionSuccess = "success"
	ConclusionFailure = "failure"
)

// Job represents a job within a workflow run
type Job struct {
	ID         int64  `json:"id"`
	RunID      int64  `json:"run_id"`
	RunURL     string `json:"run_url"`
	RunAttempt int    `json:"run_attempt"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	HTMLURL    string `json:"html_url"`
	Steps      []Step `json:"steps"`
}

// Step represents one step of a job
type Step struct {
	Name       string `json:"name"`
	Number     int    `json:"number"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
}

// JobsResponse is the envelope returned by the list-jobs endpoint
type JobsResponse struct {
	TotalCount int   `json:"total_count"`
	Jobs       []Job `json:"jobs"`
}

// Failed reports whether the job concluded with a failure
func (j Job) Failed() bool {
	return j.Conclusion == ConclusionFailure
}

// FirstFailedStep returns the first step that failed, in listing order
func (j Job) FirstFailedStep() (Step, bool) {
	for _, s := range j.Steps {
		if s.Conclusion == ConclusionFailure {
			return s, true
		}
	}
	return Step{}, false
}
