package cmd

import (
	"log/slog"
	"os"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
)

// setupLogging routes library logs and reported errors to stderr. Verbose
// mode adds per-frame debug records and stack traces.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logging.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
}
