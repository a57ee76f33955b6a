package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// JobRow is one line of the dry-run job table
type JobRow struct {
	Job    string
	Step   string
	Status string
}

const (
	jobColumnWidth  = 40
	stepColumnWidth = 40
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// Truncate shortens str to width display cells, ending in "..." when cut
func Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "...")
}

// FormatJobTable writes an aligned table of failed jobs
func FormatJobTable(w io.Writer, rows []JobRow) {
	fmt.Fprintf(w, "%s %s %s\n",
		PadRight("JOB", jobColumnWidth),
		PadRight("FAILING STEP", stepColumnWidth),
		"STATUS",
	)
	for _, r := range rows {
		step := r.Step
		if step == "" {
			step = "-"
		}
		fmt.Fprintf(w, "%s %s %s\n",
			PadRight(Truncate(r.Job, jobColumnWidth), jobColumnWidth),
			PadRight(Truncate(step, stepColumnWidth), stepColumnWidth),
			r.Status,
		)
	}
}
