// Command spotr is a small CLI over the spotr library: authenticate once,
// then query albums, artists, search, and playback from the terminal.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// newLogger creates the CLI logger with timestamps and caller reporting.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{ReportTimestamp: true, ReportCaller: true})
}

func main() {
	logger := newLogger(nil)

	// Credentials may come from a .env file (CLIENT_ID/CLIENT_SECRET) or
	// from config.toml; the runner resolves the precedence.
	_ = godotenv.Load()

	runner := NewRunner(logger)

	app := &cli.Command{
		Name:     "spotr",
		Usage:    "Query the Spotify Web API from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
