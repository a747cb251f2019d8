// Command schedulerd runs the per-doctor scheduling core as a
// request/response subprocess over stdin/stdout, per spec.md §6.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/doctorsched/scheduler/internal/engine"
	"github.com/doctorsched/scheduler/internal/proto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := engine.DefaultConfig()
	var logLevel string

	cmd := &cobra.Command{
		Use:   "schedulerd",
		Short: "Per-doctor appointment scheduling core, driven over stdin/stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
			return run(cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Doctors, "doctors", cfg.Doctors, "number of valid doctor ids, D")
	flags.IntVar(&cfg.MaxTotal, "max-total", cfg.MaxTotal, "global live-event cap per doctor timeline")
	flags.IntVar(&cfg.MaxDaily, "max-daily", cfg.MaxDaily, "live-event cap per calendar day per doctor timeline")
	flags.StringVar(&logLevel, "log-level", "info", "stderr log level (debug, info, warn, error)")

	return cmd
}

// run wires an Engine to a Shell over stdin/stdout and blocks until EXIT,
// EOF, or a termination signal. Cancellation on os.Interrupt is handled
// inside Shell.Serve itself (it selects on ctx.Done() against its own
// line-reading goroutine), so a single call here is enough to make SIGINT
// actually terminate the process instead of leaving it blocked on stdin.
func run(cfg engine.Config, logger zerolog.Logger) error {
	e := engine.New(cfg)
	shell := proto.NewShell(e, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serveErr := shell.Serve(ctx, os.Stdin)
	if serveErr != nil && !errors.Is(serveErr, proto.ErrExit) && !errors.Is(serveErr, context.Canceled) {
		logger.Error().Err(serveErr).Msg("shell exited with error")
		return serveErr
	}
	if errors.Is(serveErr, context.Canceled) {
		logger.Info().Msg("received interrupt, shutting down")
	}
	logger.Info().Msg("scheduler shell stopped")
	return nil
}
