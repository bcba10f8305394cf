package converter

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readLines loads a subtitle file as its ordered lines
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return splitLines(data), nil
}

// splitLines drops a leading BOM, accepts \n and \r\n endings and does not
// produce an extra empty line for the final newline.
func splitLines(data []byte) []string {
	s := strings.TrimPrefix(string(data), "\uFEFF")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
