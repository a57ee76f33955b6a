// Package config builds the run configuration from the environment and CLI flags.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultTimeout   = 30 * time.Second
	DefaultTailLines = 50
)

// LinkStyle selects how links are rendered in the comment body
type LinkStyle string

const (
	// LinkStyleMarkdown renders [text](url), which PR comments display as links.
	LinkStyleMarkdown LinkStyle = "markdown"
	// LinkStyleSlack renders <url|text>, the format the comment header historically used.
	LinkStyleSlack LinkStyle = "slack"
)

// Config holds everything a single summarize run needs.
type Config struct {
	// Required
	Token   string
	Owner   string
	Repo    string
	RunID   int64
	HeadSHA string

	// Transport
	APIURL  string
	Timeout time.Duration

	// Behaviour
	Concurrency int
	TailLines   int
	LinkStyle   LinkStyle
	DryRun      bool
	Confirm     bool
	Debug       bool
	JSONLogs    bool
}

// Load reads configuration from environment variables via getenv.
// Pass os.Getenv in production.
func Load(getenv func(string) string) (*Config, error) {
	required := []string{"GITHUB_TOKEN", "REPO_OWNER", "REPO_NAME", "WORKFLOW_RUN_ID", "HEAD_SHA"}
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	runID, err := strconv.ParseInt(strings.TrimSpace(getenv("WORKFLOW_RUN_ID")), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORKFLOW_RUN_ID: %w", err)
	}
	if runID <= 0 {
		return nil, fmt.Errorf("WORKFLOW_RUN_ID must be positive")
	}

	cfg := &Config{
		Token:       getenv("GITHUB_TOKEN"),
		Owner:       getenv("REPO_OWNER"),
		Repo:        getenv("REPO_NAME"),
		RunID:       runID,
		HeadSHA:     getenv("HEAD_SHA"),
		APIURL:      DefaultAPIURL,
		Timeout:     DefaultTimeout,
		Concurrency: 1,
		TailLines:   DefaultTailLines,
		LinkStyle:   LinkStyleMarkdown,
	}

	if v := getenv("GITHUB_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := getenv("SUMMARY_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SUMMARY_REQUEST_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate checks values that flags may have overridden after Load.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API URL %q", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if c.TailLines <= 0 {
		return fmt.Errorf("tail lines must be positive")
	}
	switch c.LinkStyle {
	case LinkStyleMarkdown, LinkStyleSlack:
	default:
		return fmt.Errorf("unknown link style %q (want %q or %q)", c.LinkStyle, LinkStyleMarkdown, LinkStyleSlack)
	}
	return nil
}

// APIHost returns the hostname the token should be sent to.
func (c *Config) APIHost() string {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// GetOwner implements github.RepositoryInfo
func (c *Config) GetOwner() string {
	return c.Owner
}

// GetName implements github.RepositoryInfo
func (c *Config) GetName() string {
	return c.Repo
}
