package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render formats transcript lines as text: one line per transcript line,
// or a single space-joined paragraph when join is set. Non-empty output
// always ends with a newline.
func Render(lines []string, join bool) string {
	if len(lines) == 0 {
		return ""
	}
	sep := "\n"
	if join {
		sep = " "
	}
	return strings.Join(lines, sep) + "\n"
}

// OutputPath derives the transcript path for inputPath. An empty dir keeps
// the transcript next to the input.
func OutputPath(inputPath, dir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base)
}

func writeText(dest string, lines []string, join bool) error {
	data := []byte(Render(lines, join))
	return writeAtomic(dest, func(tmpPath string) error {
		return os.WriteFile(tmpPath, data, 0644)
	})
}

// writeAtomic lets write fill a temp file in dest's directory, then renames
// it over dest. On failure dest is left as it was and the temp file removed.
// The directory is created when missing.
func writeAtomic(dest string, write func(tmpPath string) error) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vtt2text-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := write(tmpName); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	// CreateTemp makes the file 0600; transcripts are meant to be shared
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
