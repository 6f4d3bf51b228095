package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fuelsum/internal/app"
	"github.com/vk/fuelsum/internal/cli"
)

// main is the entrypoint for the fuelsum application.
func main() {
	// Bootstrap logger for code that runs before the app's own logger exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(exitCode(os.Stderr, run(os.Stdout, os.Stderr, os.Args)))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, err := cli.Parse(args)
	if err != nil {
		return err
	}

	return app.NewApp(outW, errW, appConfig).Run(context.Background())
}

// exitCode reports err on errW and maps it to a process exit code.
func exitCode(errW io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}
