// main is the entry point of the fundamentals walk-through.
//
// STARTUP SEQUENCE:
//  1. Parse the command line (cobra)
//  2. Load configuration (file optional, environment + defaults)
//  3. Initialise the logger for the configured environment
//  4. Build the fetcher over the seeded in-memory user store
//  5. Run the requested examples, printing one JSON line per result
//  6. Ctrl+C cancels the context, which abandons any pending fetch
//
// RUNNING:
//
//	go run ./cmd/fundamentals            # every example
//	go run ./cmd/fundamentals fetch      # only the simulated fetches
//	FETCH_SEED=7 FETCH_DELAY=200ms go run ./cmd/fundamentals fetch
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aasma0/fundamentals/internal/config"
	"github.com/aasma0/fundamentals/internal/demo"
	"github.com/aasma0/fundamentals/internal/fetch"
	"github.com/aasma0/fundamentals/internal/storage/memory"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fundamentals",
	Short: "Run small examples of promises, closures, callbacks and slice helpers",
	Long: `fundamentals walks through a handful of language basics expressed in Go:
a simulated asynchronous fetch consumed three ways, a closure-based counter,
higher-order slice helpers, and composition in place of inheritance.

Run without a subcommand to execute every example.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(r *demo.Runner, ctx context.Context) error {
			return r.RunAll(ctx)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration YAML file")

	sub := []struct {
		use, short string
		fn         func(*demo.Runner, context.Context) error
	}{
		{"fetch", "Run the simulated fetch with then/catch and await consumers", (*demo.Runner).RunFetches},
		{"counter", "Run the closure-based counter", (*demo.Runner).RunCounter},
		{"collections", "Run the map/filter/find/reduce examples", (*demo.Runner).RunCollections},
		{"people", "Run the Person/Student composition example", (*demo.Runner).RunPeople},
	}
	for _, s := range sub {
		rootCmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), s.fn)
			},
		})
	}
}

func run(ctx context.Context, fn func(*demo.Runner, context.Context) error) error {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return err
	}

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Debug("configuration loaded",
		slog.String("env", cfg.Env),
		slog.Duration("fetch_delay", cfg.Fetch.Delay),
		slog.Float64("fetch_success_rate", cfg.Fetch.SuccessRate),
	)

	fetcher := fetch.New(memory.New(),
		fetch.WithDelay(cfg.Fetch.Delay),
		fetch.WithOutcome(fetch.RandomOutcome(cfg.Fetch.SuccessRate, cfg.Fetch.Seed)),
		fetch.WithLogger(log),
	)

	return fn(demo.New(fetcher, os.Stdout, log), ctx)
}

// setupLogger returns a *slog.Logger configured for the given environment.
// Logs go to stderr so stdout carries only the JSON results.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default: // "dev" and anything unrecognised
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
