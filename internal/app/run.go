package app

import (
	"context"
	"fmt"

	"github.com/vk/fuelsum/internal/ctxlog"
	"github.com/vk/fuelsum/internal/fsutil"
	"github.com/vk/fuelsum/internal/fuel"
)

// Run opens the configured input, accumulates it and prints the total.
//
// An *fsutil.OpenError is returned unwrapped so its message reaches the
// user verbatim.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "input", a.config.InputPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	in, err := fsutil.OpenInput(a.config.InputPath)
	if err != nil {
		logger.Debug("Input could not be opened.", "error", err, "cause", fsutil.Cause(err))
		return err
	}
	defer in.Close()

	res := fuel.Sum(ctx, in)
	logger.Debug("Accumulation finished.", "count", res.Count, "stop", res.Stop.Reason, "total", res.Total)

	if _, err := fmt.Fprintln(a.outW, res.Total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
