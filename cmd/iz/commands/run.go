package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aligoren/iz/internal/config"
	"github.com/aligoren/iz/internal/errors"
	"github.com/aligoren/iz/internal/git"
	"github.com/aligoren/iz/internal/lifecycle"
	"github.com/aligoren/iz/internal/logfields"
	"github.com/aligoren/iz/internal/runner"
	"github.com/aligoren/iz/internal/template"
	"github.com/aligoren/iz/internal/workspace"
)

// RunCmd implements the primary operation: materialize a commit into a fresh
// temporary directory and run a configured command inside it.
type RunCmd struct {
	CommitID    string   `arg:"" name:"commit-id" help:"Commit to test (hash, short hash, branch, tag or HEAD)"`
	CommandName string   `arg:"" name:"command-name" help:"Name of a command defined in izconfig.json"`
	Keep        bool     `help:"Keep temporary directory after execution"`
	TempDir     string   `name:"temp-dir" help:"Temporary directory path (default: .iztemp)"`
	Param       []string `name:"param" placeholder:"KEY=VALUE" help:"Additional template parameters (repeatable)"`
}

func (r *RunCmd) Run(g *Global) error {
	fmt.Fprintln(g.Out, "Starting iz CLI...")

	cfg, err := config.Load()
	if err != nil {
		return errors.ConfigError(err)
	}

	commandTemplate, ok := cfg.Commands[r.CommandName]
	if !ok {
		return errors.CommandNotFound(r.CommandName)
	}

	params, err := template.ParseParams(r.Param)
	if err != nil {
		return errors.ParamError(err)
	}

	// Resolve the template before any filesystem work so a missing parameter
	// can never leave an orphaned workspace behind.
	finalCommand, err := template.Substitute(commandTemplate, params)
	if err != nil {
		return errors.TemplateError(err)
	}

	fmt.Fprintf(g.Out, "Commit: %s\n", r.CommitID)
	fmt.Fprintf(g.Out, "Command: %s\n", finalCommand)

	keep := r.Keep || cfg.Keep

	baseDir, err := cfg.ResolveBaseDir(r.TempDir)
	if err != nil {
		return errors.WorkspaceError("resolve base directory", err)
	}

	workspacePath, err := workspace.Allocate(baseDir)
	if err != nil {
		return errors.WorkspaceError("create", err)
	}

	guard := lifecycle.NewGuard()
	if !keep {
		guard.Arm(workspacePath)
	}

	fmt.Fprintf(g.Out, "Temporary directory: %s\n", workspacePath)

	// The watcher races the rest of the sequence: armed strictly before it
	// starts, disarmed strictly after the subprocess returns, cancelled last.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if !keep {
		go lifecycle.WatchSignals(ctx, guard)
	}

	slog.Debug("Workspace ready",
		logfields.Commit(r.CommitID),
		logfields.Command(r.CommandName),
		logfields.Path(workspacePath),
		logfields.BaseDir(baseDir))

	if err := git.NewMaterializer(".").Materialize(r.CommitID, workspacePath); err != nil {
		finishCleanup(g, guard, workspacePath, keep)
		return errors.CheckoutError(err)
	}

	fmt.Fprintln(g.Out, "Executing command...")
	runErr := runner.Run(finalCommand, workspacePath, g.Out, g.Err)

	finishCleanup(g, guard, workspacePath, keep)

	if runErr != nil {
		return errors.ExecError(runErr)
	}

	fmt.Fprintln(g.Out, "Operation completed!")
	return nil
}

// finishCleanup removes the workspace on the normal path, or reports where it
// was preserved. A removal failure here is reported but not fatal; the run's
// outcome is already decided.
func finishCleanup(g *Global, guard *lifecycle.Guard, workspacePath string, keep bool) {
	if keep {
		fmt.Fprintf(g.Out, "Temporary directory preserved: %s\n", workspacePath)
		return
	}

	path, ok := guard.DisarmAndTake()
	if !ok {
		return
	}

	if err := os.RemoveAll(path); err != nil {
		fmt.Fprintf(g.Err, "Error cleaning temporary directory: %v\n", err)
		return
	}
	fmt.Fprintln(g.Out, "Temporary directory cleaned")
}
