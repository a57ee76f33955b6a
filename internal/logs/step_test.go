package logs

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractStep(t *testing.T) {
	tests := []struct {
		name     string
		log      string
		step     string
		expected string
	}{
		{
			name: "run prefixed group",
			log: strings.Join([]string{
				"2024-01-01T00:00:00Z ##[group]Run actions/checkout@v4",
				"checking out",
				"2024-01-01T00:00:01Z ##[endgroup]",
				"2024-01-01T00:00:02Z ##[group]Run Build",
				"go build ./...",
				"main.go:3:1: syntax error",
				"2024-01-01T00:00:03Z ##[endgroup]",
				"##[error]Process completed with exit code 1.",
			}, "\n"),
			step:     "Build",
			expected: "go build ./...\nmain.go:3:1: syntax error",
		},
		{
			name: "group without run prefix",
			log: strings.Join([]string{
				"##[group]Checkout repository",
				"Syncing repository: octo/widgets",
				"fatal: couldn't find remote ref",
				"##[endgroup]",
			}, "\n"),
			step:     "Checkout repository",
			expected: "Syncing repository: octo/widgets\nfatal: couldn't find remote ref",
		},
		{
			name:     "recording stops at first end marker",
			log:      "##[group]Run Test\nfirst\n##[endgroup]\nafter\n##[endgroup]",
			step:     "Test",
			expected: "first",
		},
		{
			name:     "first matching group wins",
			log:      "##[group]Run Test\nfirst\n##[endgroup]\n##[group]Run Test\nsecond\n##[endgroup]",
			step:     "Test",
			expected: "first",
		},
		{
			name:     "unterminated group runs to end of log",
			log:      "noise\n##[group]Run Deploy\nuploading\ntimed out",
			step:     "Deploy",
			expected: "uploading\ntimed out",
		},
		{
			name:     "empty group yields empty excerpt",
			log:      "before\n##[group]Run Lint\n##[endgroup]\nafter",
			step:     "Lint",
			expected: "",
		},
		{
			name:     "crlf line endings",
			log:      "##[group]Run Build\r\nline one\r\n##[endgroup]\r\n",
			step:     "Build",
			expected: "line one",
		},
		{
			name:     "no marker falls back to whole short log",
			log:      "one\ntwo\nthree\n",
			step:     "Build",
			expected: "one\ntwo\nthree",
		},
		{
			name:     "other step's group does not match",
			log:      "##[group]Run Lint\nlint output\n##[endgroup]\ntail line",
			step:     "Build",
			expected: "##[group]Run Lint\nlint output\n##[endgroup]\ntail line",
		},
		{
			name:     "empty log",
			log:      "",
			step:     "Build",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractStep(tt.log, tt.step, 50)
			if got != tt.expected {
				t.Errorf("ExtractStep(%q) = %q, want %q", tt.step, got, tt.expected)
			}
		})
	}
}

func TestExtractStep_FallbackTail(t *testing.T) {
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	log := strings.Join(lines, "\n")

	got := ExtractStep(log, "Build", 50)
	want := strings.Join(lines[70:], "\n")
	if got != want {
		t.Errorf("fallback returned %d lines, want last 50", len(strings.Split(got, "\n")))
	}

	got = ExtractStep(log, "Build", 5)
	if got != strings.Join(lines[115:], "\n") {
		t.Errorf("custom tail = %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single newline", input: "\n", expected: []string{""}},
		{name: "trailing newline", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "blank line kept", input: "a\n\nb", expected: []string{"a", "", "b"}},
		{name: "crlf", input: "a\r\nb", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") || len(got) != len(tt.expected) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
