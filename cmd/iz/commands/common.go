package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/aligoren/iz/internal/logfields"
	"github.com/google/uuid"
)

// Global context passed to subcommands. Carrying the standard streams here
// lets end-to-end tests run commands in-process against buffers.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
	Err    io.Writer
	In     io.Reader
}

// CLI definition & global flags. RunCmd is the default command so the primary
// operation stays `iz <commit-id> <command-name>` without a subcommand word.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Test a Git commit by running a configured command in a temporary directory"`
	Clean CleanCmd `cmd:"" help:"Clean up leftover temporary directories"`
}

// AfterApply runs after flag parsing; setup logging once. Every invocation
// gets a correlation id so interleaved runs can be told apart in logs.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(logfields.InvocationID(uuid.NewString()))
	slog.SetDefault(logger)
	return nil
}
