package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ryo246912/gh-failure-summary/internal/config"
	"github.com/ryo246912/gh-failure-summary/internal/github"
	"github.com/ryo246912/gh-failure-summary/internal/logger"
	"github.com/ryo246912/gh-failure-summary/internal/service"
	"github.com/ryo246912/gh-failure-summary/internal/ui"
	"github.com/spf13/cobra"
)

type flags struct {
	apiURL      string
	timeout     string
	concurrency int
	tailLines   int
	linkStyle   string
	logFormat   string
	dryRun      bool
	confirm     bool
	debug       bool
}

func newRootCommand(getenv func(string) string, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "failure-summary",
		Short: "Comment a summary of failed GitHub Actions jobs on the pull request",
		Long: `Reads GITHUB_TOKEN, REPO_OWNER, REPO_NAME, WORKFLOW_RUN_ID and HEAD_SHA from the
environment, finds the pull request for the workflow run, extracts the log of
each failed job's failing step and posts them as a single PR comment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, getenv, f)
			if err != nil {
				return err
			}
			return runCommand(cmd.Context(), cfg, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "GitHub API base URL (default $GITHUB_API_URL or https://api.github.com)")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "per-request timeout (default $SUMMARY_REQUEST_TIMEOUT or 30s)")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 1, "number of job logs to download at once")
	cmd.Flags().IntVar(&f.tailLines, "tail-lines", config.DefaultTailLines, "lines of log to show when the failing step's group is not found")
	cmd.Flags().StringVar(&f.linkStyle, "link-style", string(config.LinkStyleMarkdown), "link syntax in the comment: markdown or slack")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "progress log format: text or json")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the comment instead of posting it")
	cmd.Flags().BoolVar(&f.confirm, "confirm", false, "ask before posting the comment")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "debug logging including HTTP traffic")

	return cmd
}

func buildConfig(cmd *cobra.Command, getenv func(string) string, f flags) (*config.Config, error) {
	cfg, err := config.Load(getenv)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		d, err := time.ParseDuration(f.timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.Timeout = d
	}
	cfg.Concurrency = f.concurrency
	cfg.TailLines = f.tailLines
	cfg.LinkStyle = config.LinkStyle(f.linkStyle)
	cfg.DryRun = f.dryRun
	cfg.Confirm = f.confirm
	cfg.Debug = f.debug

	switch f.logFormat {
	case "text":
	case "json":
		cfg.JSONLogs = true
	default:
		return nil, fmt.Errorf("unknown --log-format %q", f.logFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runCommand(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	var httpLog io.Writer
	if cfg.Debug {
		level = slog.LevelDebug
		httpLog = stderr
	}
	log := logger.New(stderr, level, cfg.JSONLogs).WithComponent("failure-summary")

	// Initialize GitHub client
	client, err := github.NewClient(github.Options{
		Token:    cfg.Token,
		APIURL:   cfg.APIURL,
		Timeout:  cfg.Timeout,
		DebugLog: httpLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	summaryService := service.NewSummaryService(client, cfg, &ui.DefaultPrompter{}, log, service.OptionsFromConfig(cfg))

	result, err := summaryService.Run(ctx)
	if err != nil {
		return err
	}

	if result.Outcome == service.OutcomeDryRun {
		rows := make([]ui.JobRow, len(result.Sections))
		for i, sec := range result.Sections {
			status := "excerpt"
			if !sec.Found {
				status = "step unknown"
			}
			rows[i] = ui.JobRow{Job: sec.Job.Name, Step: sec.Step, Status: status}
		}
		ui.FormatJobTable(stderr, rows)
		fmt.Fprint(stdout, result.Body)
	}
	return nil
}

// reportError prints err for the operator. A failed post gets the status and
// response text so it is distinguishable from failing before posting.
func reportError(w io.Writer, err error) {
	var publishErr *service.PublishError
	if errors.As(err, &publishErr) {
		fmt.Fprintf(w, "Error posting comment: %d\n", publishErr.StatusCode())
		fmt.Fprintf(w, "Response: %s\n", publishErr.ResponseText())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func main() {
	cmd := newRootCommand(os.Getenv, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
