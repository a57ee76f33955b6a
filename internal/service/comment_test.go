package service

import (
	"strings"
	"testing"

	"github.com/ryo246912/gh-failure-summary/internal/config"
	"github.com/ryo246912/gh-failure-summary/internal/models"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name     string
		style    config.LinkStyle
		expected string
	}{
		{name: "markdown", style: config.LinkStyleMarkdown, expected: "[View Full Log](https://example.com/log)"},
		{name: "slack", style: config.LinkStyleSlack, expected: "<https://example.com/log|View Full Log>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Link(tt.style, "https://example.com/log", "View Full Log")
			if got != tt.expected {
				t.Errorf("Link() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildComment_SectionOrder(t *testing.T) {
	first := models.Job{RunURL: "https://api.github.com/runs/1", RunAttempt: 3}
	sections := []JobSection{
		{Job: models.Job{Name: "lint", HTMLURL: "https://l"}, Step: "golangci", Found: true, Excerpt: "\n  issue found  \n"},
		{Job: models.Job{Name: "e2e", HTMLURL: "https://e"}},
		{Job: models.Job{Name: "unit", HTMLURL: "https://u"}, Step: "go test", Found: true, Excerpt: "FAIL"},
	}

	body := BuildComment(first, sections, config.LinkStyleMarkdown)

	if !strings.HasPrefix(body, "## 🤖 GitHub Actions Failure Analysis for run [#3](https://api.github.com/runs/1)\n\n") {
		t.Errorf("unexpected header:\n%s", body)
	}
	lint := strings.Index(body, "Job: `lint`")
	e2e := strings.Index(body, "Job: `e2e`")
	unit := strings.Index(body, "Job: `unit`")
	if lint < 0 || e2e < 0 || unit < 0 || !(lint < e2e && e2e < unit) {
		t.Errorf("sections out of order (lint=%d e2e=%d unit=%d)", lint, e2e, unit)
	}
	if !strings.Contains(body, "```\nissue found\n```\n") {
		t.Errorf("excerpt should be trimmed inside the fence:\n%s", body)
	}
	if strings.Count(body, "View Full Log") != 3 {
		t.Errorf("expected a log link per job:\n%s", body)
	}
}

func TestCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no backticks", input: "plain", expected: "```"},
		{name: "inline code", input: "use `go vet`", expected: "```"},
		{name: "nested fence", input: "```go\nx\n```", expected: "````"},
		{name: "long run", input: "`````", expected: "``````"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codeFence(tt.input); got != tt.expected {
				t.Errorf("codeFence(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
