// Package runner executes the resolved command inside a workspace.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrEmptyCommand reports a command template that resolved to nothing
// executable.
var ErrEmptyCommand = errors.New("empty command")

// ExitError reports a command that started but returned a nonzero status.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed with status: %d", e.Status)
}

// Run splits command on whitespace (no shell, no quote handling) and executes
// it with workdir as the working directory. The child's stdout and stderr are
// captured in buffers and relayed to out/errOut after completion, keeping its
// output clearly separated from iz's own progress lines.
func Run(command, workdir string, out, errOut io.Writer) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Dir = workdir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if stdout.Len() > 0 {
		fmt.Fprintln(out, "Output:")
		fmt.Fprintln(out, stdout.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprintln(errOut, "Error output:")
		fmt.Fprintln(errOut, stderr.String())
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return &ExitError{Status: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to start command %s: %w", parts[0], runErr)
	}

	return nil
}
