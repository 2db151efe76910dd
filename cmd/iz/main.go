package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/aligoren/iz/cmd/iz/commands"
	"github.com/aligoren/iz/internal/errors"
	"github.com/aligoren/iz/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("iz"),
		kong.Description("CLI tool for testing Git commits in temporary directories"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	g := &commands.Global{
		Logger: slog.Default(),
		Out:    os.Stdout,
		Err:    os.Stderr,
		In:     os.Stdin,
	}

	err := ctx.Run(g)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
