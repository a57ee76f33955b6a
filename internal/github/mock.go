package github

import (
	"context"
	"fmt"
	"sync"

	"github.com/ryo246912/gh-failure-summary/internal/models"
)

// MockClient implements ActionsClient for testing. Safe for concurrent log downloads.
type MockClient struct {
	mu sync.Mutex

	// Control test behavior
	Run            *models.WorkflowRun
	RunError       error
	CommitPRs      []models.PullRequest
	CommitPRsError error
	Jobs           []models.Job
	JobsError      error
	Logs           map[int64][]byte
	LogsErrors     map[int64]error
	CommentError   error

	// Track method calls
	GetWorkflowRunCalled            bool
	ListPullRequestsForCommitCalled bool
	ListJobsCalled                  bool
	CreateCommentCalled             bool
	DownloadedJobIDs                []int64

	// Store call arguments for verification
	LastOwner       string
	LastRepo        string
	LastRunID       int64
	LastSHA         string
	LastPRNumber    int
	LastCommentBody string
}

func (m *MockClient) GetWorkflowRun(ctx context.Context, owner, repo string, runID int64) (*models.WorkflowRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetWorkflowRunCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastRunID = runID
	if m.RunError != nil {
		return nil, m.RunError
	}
	if m.Run == nil {
		return &models.WorkflowRun{ID: runID}, nil
	}
	return m.Run, nil
}

func (m *MockClient) ListPullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]models.PullRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListPullRequestsForCommitCalled = true
	m.LastSHA = sha
	return m.CommitPRs, m.CommitPRsError
}

func (m *MockClient) ListJobs(ctx context.Context, owner, repo string, runID int64) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListJobsCalled = true
	m.LastRunID = runID
	return m.Jobs, m.JobsError
}

func (m *MockClient) DownloadJobLogs(ctx context.Context, owner, repo string, jobID int64) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DownloadedJobIDs = append(m.DownloadedJobIDs, jobID)
	if err := m.LogsErrors[jobID]; err != nil {
		return nil, err
	}
	return m.Logs[jobID], nil
}

func (m *MockClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCommentCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastPRNumber = number
	m.LastCommentBody = body
	return m.CommentError
}

// Downloaded returns a copy of the job IDs whose logs were requested
func (m *MockClient) Downloaded() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.DownloadedJobIDs...)
}

// MockRepository implements repository information for testing
type MockRepository struct {
	Owner string
	Name  string
}

func (m *MockRepository) GetOwner() string {
	return m.Owner
}

func (m *MockRepository) GetName() string {
	return m.Name
}

// CreateTestJob builds a job whose steps carry the given conclusions, named Step1..StepN
func CreateTestJob(id int64, conclusion string, stepConclusions ...string) models.Job {
	steps := make([]models.Step, len(stepConclusions))
	for i, c := range stepConclusions {
		steps[i] = models.Step{
			Name:       fmt.Sprintf("Step%d", i+1),
			Number:     i + 1,
			Status:     "completed",
			Conclusion: c,
		}
	}
	return models.Job{
		ID:         id,
		RunID:      1,
		RunURL:     "https://api.github.com/repos/owner/repo/actions/runs/1",
		RunAttempt: 1,
		Name:       fmt.Sprintf("job-%d", id),
		Status:     "completed",
		Conclusion: conclusion,
		HTMLURL:    fmt.Sprintf("https://github.com/owner/repo/actions/runs/1/job/%d", id),
		Steps:      steps,
	}
}

// NewStatusError builds a StatusError for testing error conditions
func NewStatusError(code int, body string) error {
	return &StatusError{Method: "GET", URL: "https://api.github.com/test", StatusCode: code, Body: body}
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}
