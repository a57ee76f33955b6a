package service

import (
	"context"
	"fmt"

	"github.com/ryo246912/gh-failure-summary/internal/config"
	"github.com/ryo246912/gh-failure-summary/internal/github"
	"github.com/ryo246912/gh-failure-summary/internal/logger"
	"github.com/ryo246912/gh-failure-summary/internal/logs"
	"github.com/ryo246912/gh-failure-summary/internal/models"
	"github.com/ryo246912/gh-failure-summary/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Outcome describes how a run ended
type Outcome string

const (
	OutcomeNoPullRequest Outcome = "no-pull-request"
	OutcomeNoFailedJobs  Outcome = "no-failed-jobs"
	OutcomeDryRun        Outcome = "dry-run"
	OutcomeDeclined      Outcome = "declined"
	OutcomePosted        Outcome = "posted"
)

// Options controls a single summarize run
type Options struct {
	RunID       int64
	HeadSHA     string
	Concurrency int
	TailLines   int
	LinkStyle   config.LinkStyle
	DryRun      bool
	Confirm     bool
}

// OptionsFromConfig copies the run settings out of cfg
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RunID:       cfg.RunID,
		HeadSHA:     cfg.HeadSHA,
		Concurrency: cfg.Concurrency,
		TailLines:   cfg.TailLines,
		LinkStyle:   cfg.LinkStyle,
		DryRun:      cfg.DryRun,
		Confirm:     cfg.Confirm,
	}
}

// Result is what Run produced. PRNumber, Sections and Body are only set once
// the corresponding stage was reached.
type Result struct {
	Outcome  Outcome
	PRNumber int
	Sections []JobSection
	Body     string
}

// SummaryService contains the business logic
type SummaryService struct {
	client   github.ActionsClient
	repo     github.RepositoryInfo
	prompter ui.Prompter
	log      *logger.Logger
	opts     Options
}

// NewSummaryService creates a new service instance
func NewSummaryService(client github.ActionsClient, repo github.RepositoryInfo, prompter ui.Prompter, log *logger.Logger, opts Options) *SummaryService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.TailLines <= 0 {
		opts.TailLines = config.DefaultTailLines
	}
	if opts.LinkStyle == "" {
		opts.LinkStyle = config.LinkStyleMarkdown
	}
	return &SummaryService{
		client:   client,
		repo:     repo,
		prompter: prompter,
		log:      log,
		opts:     opts,
	}
}

// Run handles the complete workflow: resolve PR, find failed jobs, extract
// logs, then post one comment.
func (s *SummaryService) Run(ctx context.Context) (Result, error) {
	pr, err := s.ResolvePullRequest(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve pull request: %w", err)
	}
	if pr == nil {
		return Result{Outcome: OutcomeNoPullRequest}, nil
	}
	result := Result{PRNumber: pr.Number}

	failed, err := s.FailedJobs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list jobs: %w", err)
	}
	if len(failed) == 0 {
		s.log.Info("workflow run failed, but no specific jobs were marked as failed")
		result.Outcome = OutcomeNoFailedJobs
		return result, nil
	}

	sections, err := s.collectSections(ctx, failed)
	if err != nil {
		return result, err
	}
	result.Sections = sections
	result.Body = BuildComment(failed[0], sections, s.opts.LinkStyle)

	if s.opts.DryRun {
		result.Outcome = OutcomeDryRun
		return result, nil
	}

	if s.opts.Confirm {
		ok, err := s.prompter.ConfirmPost(pr.Number, len(failed))
		if err != nil {
			return result, fmt.Errorf("failed to confirm posting: %w", err)
		}
		if !ok {
			s.log.Info("posting cancelled")
			result.Outcome = OutcomeDeclined
			return result, nil
		}
	}

	if err := s.Publish(ctx, pr.Number, result.Body); err != nil {
		return result, err
	}
	result.Outcome = OutcomePosted
	return result, nil
}

// ResolvePullRequest returns the first PR attached to the workflow run, falling
// back to PRs associated with the head commit. Returns nil when there is none.
func (s *SummaryService) ResolvePullRequest(ctx context.Context) (*models.PullRequest, error) {
	owner, name := s.repo.GetOwner(), s.repo.GetName()

	s.log.Info("fetching workflow run", "run_id", s.opts.RunID)
	run, err := s.client.GetWorkflowRun(ctx, owner, name, s.opts.RunID)
	if err != nil {
		return nil, err
	}
	if len(run.PullRequests) > 0 {
		s.log.Info("found PR via workflow run pull_requests", "number", run.PullRequests[0].Number)
		return &run.PullRequests[0], nil
	}

	s.log.Info("no PR on workflow run, looking up PRs for head commit", "sha", s.opts.HeadSHA)
	prs, err := s.client.ListPullRequestsForCommit(ctx, owner, name, s.opts.HeadSHA)
	if err != nil {
		return nil, err
	}
	if len(prs) == 0 {
		s.log.Info("no pull requests found for commit", "sha", s.opts.HeadSHA)
		return nil, nil
	}

	s.log.Info("found PR for commit, using the first one", "count", len(prs), "number", prs[0].Number)
	return &prs[0], nil
}

// FailedJobs lists the run's jobs and keeps the failed ones in listing order
func (s *SummaryService) FailedJobs(ctx context.Context) ([]models.Job, error) {
	s.log.Info("fetching jobs", "run_id", s.opts.RunID)
	jobs, err := s.client.ListJobs(ctx, s.repo.GetOwner(), s.repo.GetName(), s.opts.RunID)
	if err != nil {
		return nil, err
	}
	failed := FilterFailed(jobs)
	s.log.Info("found failed jobs", "count", len(failed))
	return failed, nil
}

// FilterFailed returns the jobs whose conclusion is failure, preserving order
func FilterFailed(jobs []models.Job) []models.Job {
	failed := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Failed() {
			failed = append(failed, job)
		}
	}
	return failed
}

// JobLog downloads a job's logs and returns the concatenated top-level text
func (s *SummaryService) JobLog(ctx context.Context, jobID int64) (string, error) {
	s.log.Debug("fetching logs", "job_id", jobID)
	data, err := s.client.DownloadJobLogs(ctx, s.repo.GetOwner(), s.repo.GetName(), jobID)
	if err != nil {
		return "", err
	}
	text, err := logs.Concatenate(data)
	if err != nil {
		return "", fmt.Errorf("job %d: %w", jobID, err)
	}
	return text, nil
}

// Publish posts body as a new comment on the pull request
func (s *SummaryService) Publish(ctx context.Context, prNumber int, body string) error {
	s.log.Info("posting comment", "pr", prNumber)
	if err := s.client.CreateComment(ctx, s.repo.GetOwner(), s.repo.GetName(), prNumber, body); err != nil {
		return &PublishError{PRNumber: prNumber, Err: err}
	}
	s.log.Info("successfully posted comment", "pr", prNumber)
	return nil
}

// collectSections builds one section per failed job. Log downloads run with
// up to Concurrency in flight; sections stay in job order.
func (s *SummaryService) collectSections(ctx context.Context, jobs []models.Job) ([]JobSection, error) {
	sections := make([]JobSection, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		step, ok := job.FirstFailedStep()
		if !ok {
			s.log.Warn("could not determine failing step", "job", job.Name)
			sections[i] = JobSection{Job: job}
			continue
		}

		g.Go(func() error {
			full, err := s.JobLog(gctx, job.ID)
			if err != nil {
				s.log.WithError(err).Error("log fetch failed", "job", job.Name, "job_id", job.ID)
				return fmt.Errorf("failed to fetch logs for job %q: %w", job.Name, err)
			}
			sections[i] = JobSection{
				Job:     job,
				Step:    step.Name,
				Found:   true,
				Excerpt: logs.ExtractStep(full, step.Name, s.opts.TailLines),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sections, nil
}
