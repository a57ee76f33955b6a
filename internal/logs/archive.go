package logs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var (
	zipSignature      = []byte("PK\x03\x04")
	emptyZipSignature = []byte("PK\x05\x06")
)

// Concatenate returns the text of every top-level file in a job log archive.
// Entries nested under a folder are per-step copies of the top-level log and
// are skipped. Invalid UTF-8 is dropped. An entry that cannot be read becomes
// a one-line note instead of failing the whole archive.
//
// A body without the zip signature is treated as a single plain-text log.
func Concatenate(archive []byte) (string, error) {
	if !isZip(archive) {
		return strings.TrimSpace(decode(archive)), nil
	}

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", fmt.Errorf("failed to open log archive: %w", err)
	}

	var sb strings.Builder
	for _, f := range zr.File {
		if strings.Contains(f.Name, "/") {
			continue
		}
		content, err := readEntry(f)
		if err != nil {
			fmt.Fprintf(&sb, "Could not read log file %s: %v\n", f.Name, err)
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

func readEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return decode(data), nil
}

func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

func isZip(b []byte) bool {
	return bytes.HasPrefix(b, zipSignature) || bytes.HasPrefix(b, emptyZipSignature)
}
