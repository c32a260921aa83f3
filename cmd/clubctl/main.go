// Command clubctl drives ClubHive as the single signed-in user. The
// session lives in the configured store and survives between invocations.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/forgo/clubhive/api/internal/app"
	"github.com/forgo/clubhive/api/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		printUsage(stdout)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()
	a, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	sess, err := a.Start(ctx)
	if err != nil {
		return err
	}

	c := &client{app: a, sess: sess, out: stdout}
	return c.execute(ctx, args)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `clubhive command line client.

Usage:
  clubctl <command> [flags] [args]

Commands:`)
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-28s %s\n", cmd.usage, cmd.summary)
	}
	fmt.Fprintln(w, `
The store is selected with STORE_BACKEND (memory, sqlite, redis,
surrealdb). Variables may also be set in a .env file.`)
}
