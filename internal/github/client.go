package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/ryo246912/gh-failure-summary/internal/models"
)

const (
	acceptJSON = "application/vnd.github.v3+json"
	// The commit -> pulls endpoint was a preview API and still honours this media type.
	acceptGrootPreview = "application/vnd.github.groot-preview+json"
)

// Options configures the GitHub client
type Options struct {
	Token   string
	APIURL  string
	Timeout time.Duration
	// DebugLog receives verbose request/response dumps when non-nil.
	DebugLog io.Writer
}

// Client talks to the GitHub REST API through a single shared HTTP client.
type Client struct {
	http   *http.Client
	apiURL string
}

func NewClient(opts Options) (*Client, error) {
	u, err := url.Parse(opts.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	clientOpts := api.ClientOptions{
		AuthToken: opts.Token,
		Host:      u.Hostname(),
		Timeout:   opts.Timeout,
		Headers: map[string]string{
			"Authorization": "Bearer " + opts.Token,
			"Accept":        acceptJSON,
		},
		LogIgnoreEnv: true,
	}
	if opts.DebugLog != nil {
		clientOpts.Log = opts.DebugLog
		clientOpts.LogVerboseHTTP = true
	}

	httpClient, err := api.NewHTTPClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		http:   httpClient,
		apiURL: strings.TrimRight(opts.APIURL, "/"),
	}, nil
}

// GetWorkflowRun fetches a single workflow run
func (c *Client) GetWorkflowRun(ctx context.Context, owner, repo string, runID int64) (*models.WorkflowRun, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/runs/%d", owner, repo, runID)
	var run models.WorkflowRun
	if err := c.getJSON(ctx, path, acceptJSON, &run); err != nil {
		return nil, fmt.Errorf("failed to fetch workflow run: %w", err)
	}
	return &run, nil
}

// ListPullRequestsForCommit lists pull requests associated with a commit
func (c *Client) ListPullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]models.PullRequest, error) {
	path := fmt.Sprintf("repos/%s/%s/commits/%s/pulls", owner, repo, sha)
	var prs []models.PullRequest
	if err := c.getJSON(ctx, path, acceptGrootPreview, &prs); err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests for commit: %w", err)
	}
	return prs, nil
}

// ListJobs lists the jobs of a workflow run (first page only)
func (c *Client) ListJobs(ctx context.Context, owner, repo string, runID int64) ([]models.Job, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/runs/%d/jobs", owner, repo, runID)
	var resp models.JobsResponse
	if err := c.getJSON(ctx, path, acceptJSON, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return resp.Jobs, nil
}

// DownloadJobLogs returns the raw log download for a job. Redirects to the
// storage host are followed; the token is only sent to the API host.
func (c *Client) DownloadJobLogs(ctx context.Context, owner, repo string, jobID int64) ([]byte, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/jobs/%d/logs", owner, repo, jobID)
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs for job %d: %w", jobID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs for job %d: %w", jobID, err)
	}
	return data, nil
}

// CreateComment posts a new comment on a pull request
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	path := fmt.Sprintf("repos/%s/%s/issues/%d/comments", owner, repo, number)

	jsonBody, err := json.Marshal(models.CommentRequest{Body: body})
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, acceptJSON, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, accept string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, accept, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// do sends a request and turns any non-2xx response into a *StatusError.
// On success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path, accept string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+"/"+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		text, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(text),
		}
	}
	return resp, nil
}
