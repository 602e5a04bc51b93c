// Package main provides the entry point for the libris CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/libris/cmd/libris/app"
	"github.com/agentstation/libris/pkg/constants"
)

// Version information populated at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	err = application.Execute(ctx, os.Args[1:])

	// Fresh context: the signal context may already be cancelled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()

	if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
		application.Logger().Error().Err(shutdownErr).Msg("Shutdown error")
	}

	if err != nil {
		cancel()
		shutdownCancel()
		app.ExitOnError(err)
	}
}
