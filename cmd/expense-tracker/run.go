package main

import (
	"context"
	"log/slog"
	"os"
)

type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run blocks until the context is cancelled or fx requests shutdown and
// returns the process exit code.
func run(ctx context.Context, app lifecycle, stopTimeout func() context.Context) int {
	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start application", slog.String("error", err.Error()))
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(stopTimeout()); err != nil {
		slog.Error("failed to stop application", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
