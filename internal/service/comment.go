package service

import (
	"fmt"
	"strings"

	"github.com/ryo246912/gh-failure-summary/internal/config"
	"github.com/ryo246912/gh-failure-summary/internal/models"
)

// JobSection is the comment content for one failed job
type JobSection struct {
	Job     models.Job
	Step    string
	Found   bool
	Excerpt string
}

// Link renders a link in the given style
func Link(style config.LinkStyle, url, text string) string {
	if style == config.LinkStyleSlack {
		return fmt.Sprintf("<%s|%s>", url, text)
	}
	return fmt.Sprintf("[%s](%s)", text, url)
}

// BuildComment assembles the PR comment. The header links the run of first.
func BuildComment(first models.Job, sections []JobSection, style config.LinkStyle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## 🤖 GitHub Actions Failure Analysis for run %s\n\n",
		Link(style, first.RunURL, fmt.Sprintf("#%d", first.RunAttempt)))
	sb.WriteString("A CI job failed. Here is a summary of the failing step:\n\n")

	for _, sec := range sections {
		writeSection(&sb, sec, style)
	}
	return sb.String()
}

func writeSection(sb *strings.Builder, sec JobSection, style config.LinkStyle) {
	logLink := Link(style, sec.Job.HTMLURL, "View Full Log")

	if !sec.Found {
		fmt.Fprintf(sb, "### ⚠️ Job: `%s`\n", sec.Job.Name)
		fmt.Fprintf(sb, "Could not determine the exact failing step. %s\n\n", logLink)
		return
	}

	excerpt := strings.TrimSpace(sec.Excerpt)
	fence := codeFence(excerpt)

	fmt.Fprintf(sb, "### ❌ Job: `%s` / Step: `%s`\n\n", sec.Job.Name, sec.Step)
	sb.WriteString(fence + "\n")
	sb.WriteString(excerpt)
	sb.WriteString("\n" + fence + "\n")
	sb.WriteString(logLink + "\n\n")
}

// codeFence returns a backtick fence longer than any backtick run in s
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
