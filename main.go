package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	commands "github.com/gittymo/charaph/internal/commands"
	"github.com/gittymo/charaph/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	ctx := kong.Parse(&commands.Cli,
		kong.Name("charaph"),
		kong.Description("Bar charts from YAML, JSON or Prometheus data, as SVG, PNG or right in the terminal."),
		kong.UsageOnError(),
	)

	log, err := logger.New(commands.Cli.Verbose)
	ctx.FatalIfErrorf(err)
	defer func() { _ = log.Sync() }()

	// Call the Run() method of the selected parsed command.
	err = ctx.Run(&commands.Context{Timeout: commands.Cli.Timeout, Logger: log})
	ctx.FatalIfErrorf(err)
}
