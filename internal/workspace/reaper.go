package workspace

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aligoren/iz/internal/logfields"
)

// Reap removes stale workspace directories beneath baseDir: immediate
// children that are directories and carry the iz- name prefix. Unless force
// is set, the user is asked for confirmation on `in` before anything is
// removed. Per-directory removal failures are logged and tallied but never
// abort the batch; only a failure to list baseDir is an error.
func Reap(baseDir string, force bool, in io.Reader, out io.Writer) (cleaned, failed int, err error) {
	if _, statErr := os.Stat(baseDir); os.IsNotExist(statErr) {
		fmt.Fprintf(out, "Temporary directory does not exist: %s\n", baseDir)
		return 0, 0, nil
	}

	entries, readErr := os.ReadDir(baseDir)
	if readErr != nil {
		return 0, 0, fmt.Errorf("failed to read temp directory %s: %w", baseDir, readErr)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), NamePrefix) {
			candidates = append(candidates, filepath.Join(baseDir, entry.Name()))
		}
	}

	if len(candidates) == 0 {
		fmt.Fprintf(out, "No temporary directories to clean in: %s\n", baseDir)
		return 0, 0, nil
	}

	fmt.Fprintf(out, "Found %d temporary directories:\n", len(candidates))
	for _, candidate := range candidates {
		fmt.Fprintf(out, "  - %s\n", candidate)
	}

	if !force && !confirm(in, out) {
		fmt.Fprintln(out, "Cleanup cancelled")
		return 0, 0, nil
	}

	for _, candidate := range candidates {
		if removeErr := os.RemoveAll(candidate); removeErr != nil {
			failed++
			slog.Warn("Failed to clean directory", logfields.Path(candidate), logfields.Error(removeErr))
			continue
		}
		cleaned++
		fmt.Fprintf(out, "Cleaned: %s\n", candidate)
	}

	if failed == 0 {
		fmt.Fprintf(out, "Successfully cleaned %d directories!\n", cleaned)
	} else {
		fmt.Fprintf(out, "Cleaned %d directories, %d failed\n", cleaned, failed)
	}

	return cleaned, failed, nil
}

// confirm reads one line from in; only an affirmative yes proceeds.
// Blank input, anything else, or EOF declines.
func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Do you want to clean these directories? [y/N]: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
