package commands

import (
	"fmt"
	"log/slog"

	"github.com/aligoren/iz/internal/config"
	"github.com/aligoren/iz/internal/errors"
	"github.com/aligoren/iz/internal/logfields"
	"github.com/aligoren/iz/internal/workspace"
)

// CleanCmd implements the 'clean' command: remove leftover iz- workspaces
// beneath the resolved base directory.
type CleanCmd struct {
	Force   bool   `help:"Force operation without confirmation"`
	TempDir string `name:"temp-dir" help:"Temporary directory path (default: .iztemp)"`
}

func (c *CleanCmd) Run(g *Global) error {
	fmt.Fprintln(g.Out, "Starting cleanup...")

	cfg, err := config.Load()
	if err != nil {
		return errors.ConfigError(err)
	}

	baseDir, err := cfg.ResolveBaseDir(c.TempDir)
	if err != nil {
		return errors.WorkspaceError("resolve base directory", err)
	}

	cleaned, failed, err := workspace.Reap(baseDir, c.Force, g.In, g.Out)
	if err != nil {
		return errors.WorkspaceError("clean", err)
	}

	slog.Debug("Cleanup finished",
		logfields.BaseDir(baseDir),
		logfields.Cleaned(cleaned),
		logfields.Failed(failed))
	return nil
}
