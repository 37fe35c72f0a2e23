package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/driller/config"
	"github.com/katalvlaran/driller/internal/app"
	"github.com/katalvlaran/driller/internal/cli"
)

// main is the entrypoint for the driller command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the command logic for testing: parse flags, resolve config,
// then either solve once or serve.
func run(outW, errW io.Writer, args []string) error {
	settings, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg := config.Default()
	if settings.ConfigPath != "" {
		if cfg, err = config.Load(settings.ConfigPath); err != nil {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
	}
	if err = settings.Apply(cfg); err != nil {
		return err
	}

	a := app.New(outW, errW, cfg, settings.Top)
	ctx := a.Context(context.Background())
	if settings.Serve {
		return a.Serve(ctx)
	}

	return a.Solve(ctx)
}
