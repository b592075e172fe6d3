package fsutils

import (
	"bufio"
	"os"
	"strings"
)

var osOpen = os.Open

// Lines longer than this are truncated by the scanner rather than
// failing the whole read.
const maxLineBytes = 1024 * 1024

// ReadFileHead reads up to maxLines leading lines of the file and returns
// them joined with a newline separator.
func ReadFileHead(path string, maxLines int) (string, error) {
	f, err := osOpen(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lines := make([]string, 0, maxLines)
	for len(lines) < maxLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil && len(lines) == 0 {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
