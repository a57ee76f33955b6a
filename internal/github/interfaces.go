package github

import (
	"context"

	"github.com/ryo246912/gh-failure-summary/internal/models"
)

// ActionsClient defines the GitHub operations the summarizer needs
type ActionsClient interface {
	GetWorkflowRun(ctx context.Context, owner, repo string, runID int64) (*models.WorkflowRun, error)
	ListPullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]models.PullRequest, error)
	ListJobs(ctx context.Context, owner, repo string, runID int64) ([]models.Job, error)
	DownloadJobLogs(ctx context.Context, owner, repo string, jobID int64) ([]byte, error)
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

// RepositoryInfo defines repository information interface
type RepositoryInfo interface {
	GetOwner() string
	GetName() string
}

// Ensure Client implements ActionsClient interface
var _ ActionsClient = (*Client)(nil)
