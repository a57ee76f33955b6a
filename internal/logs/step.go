// Package logs turns raw job log downloads into the excerpt posted for a failing step.
package logs

import "strings"

const (
	groupStart = "##[group]"
	groupEnd   = "##[endgroup]"
)

// ExtractStep returns the lines logged inside the group that opened for step.
//
// A group opens on a line containing "##[group]Run <step>" or "##[group]<step>"
// (actions such as checkout log their name without the Run prefix) and closes
// at the first "##[endgroup]" after it. Marker lines are not included. When no
// group opens for step the last tail lines of full are returned instead.
func ExtractStep(full, step string, tail int) string {
	lines := SplitLines(full)
	runMarker := groupStart + "Run " + step
	nameMarker := groupStart + step

	var (
		collected []string
		inside    bool
	)
	for _, line := range lines {
		if !inside {
			if strings.Contains(line, runMarker) || strings.Contains(line, nameMarker) {
				inside = true
			}
			continue
		}
		if strings.Contains(line, groupEnd) {
			break
		}
		collected = append(collected, line)
	}

	if !inside {
		return strings.Join(Tail(lines, tail), "\n")
	}
	return strings.Join(collected, "\n")
}

// SplitLines splits s on line boundaries. A trailing newline does not produce
// an empty final line, and \r\n is treated as a single boundary.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Tail returns the last n lines, or all of them when there are fewer.
func Tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
