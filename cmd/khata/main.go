package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/khata/internal/cli"
	"github.com/mmynk/khata/pkg/logging"
)

func main() {
	// CLI output goes to stdout; keep slog quiet unless asked for.
	logging.SetupWithLevel("text", slog.LevelWarn)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
