package logs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genLines generates log lines that never contain group markers.
func genLines() gopter.Gen {
	return gen.SliceOf(gen.Identifier())
}

func TestExtractStepProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("log without markers falls back to the last 50 lines", prop.ForAll(
		func(lines []string, step string) bool {
			got := ExtractStep(strings.Join(lines, "\n"), step, 50)
			want := lines
			if len(want) > 50 {
				want = want[len(want)-50:]
			}
			return got == strings.Join(want, "\n")
		},
		genLines(),
		gen.Identifier(),
	))

	properties.Property("run-prefixed group returns exactly its body", prop.ForAll(
		func(before, body, after []string, step string) bool {
			var all []string
			all = append(all, before...)
			all = append(all, "##[group]Run "+step)
			all = append(all, body...)
			all = append(all, "##[endgroup]")
			all = append(all, after...)
			return ExtractStep(strings.Join(all, "\n"), step, 50) == strings.Join(body, "\n")
		},
		genLines(),
		genLines(),
		genLines(),
		gen.Identifier(),
	))

	properties.Property("bare group returns exactly its body", prop.ForAll(
		func(body []string, step string) bool {
			log := "##[group]" + step + "\n" + strings.Join(body, "\n") + "\n##[endgroup]\ntrailer"
			return ExtractStep(log, step, 50) == strings.Join(body, "\n")
		},
		genLines(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

func TestConcatenateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("entries with a path separator are always skipped", prop.ForAll(
		func(contents []string, nested []bool) bool {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			var want []string
			for i, c := range contents {
				name := fmt.Sprintf("%d_job.txt", i)
				if i < len(nested) && nested[i] {
					name = fmt.Sprintf("job/%d_step.txt", i)
				} else {
					want = append(want, c)
				}
				w, err := zw.Create(name)
				if err != nil {
					return false
				}
				if _, err := w.Write([]byte(c)); err != nil {
					return false
				}
			}
			if err := zw.Close(); err != nil {
				return false
			}

			got, err := Concatenate(buf.Bytes())
			return err == nil && got == strings.Join(want, "\n")
		},
		genLines(),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
