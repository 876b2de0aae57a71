package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/blockrelay/internal/config"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/telemetry"
	"github.com/gabapcia/blockrelay/internal/relay"
)

// errPipelineStopped cancels the run group when the pipeline ends on its own.
var errPipelineStopped = errors.New("pipeline stopped")

// startRelayCommand runs the relay pipeline until SIGINT or SIGTERM, or until
// the head subscription ends for good.
//
//	blockrelay start --config blockrelay.yaml
func startRelayCommand(b Builder) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Relays every new source block's hash, parent hash and transactions root to the destination contract.",
		Usage:       "Runs the relay pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runCommand(ctx, c, b, func(ctx context.Context, cfg config.Config) (relay.Service, error) {
				if err := cfg.Destination.Validate(true); err != nil {
					return nil, err
				}

				return b.RelayService(ctx, cfg)
			})
		},
	}
}

// startWatchCommand runs the pipeline without a destination.
//
//	blockrelay watch
func startWatchCommand(b Builder) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Logs every new source block and its transactions without submitting anything.",
		Usage:       "Runs the pipeline in watch mode. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runCommand(ctx, c, b, b.WatchService)
		},
	}
}

type serviceFactory func(ctx context.Context, cfg config.Config) (relay.Service, error)

func runCommand(ctx context.Context, c *cli.Command, b Builder, newService serviceFactory) error {
	cfg, shutdown, err := setup(ctx, c, b)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "shutdown failed", "error", err)
		}
	}()

	svc, err := newService(ctx, cfg)
	if err != nil {
		return err
	}

	return runPipeline(ctx, cfg.Telemetry, svc)
}

// runPipeline starts svc, serves metrics when configured and blocks until a
// termination signal arrives, ctx is done or svc stops by itself.
func runPipeline(ctx context.Context, cfg config.Telemetry, svc relay.Service) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-svc.Done():
			return errPipelineStopped
		}
	})

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			logger.Info(gctx, "serving metrics", "metrics.addr", cfg.MetricsAddr)
			return telemetry.ServeMetrics(gctx, cfg.MetricsAddr)
		})
	}

	err := g.Wait()
	if errors.Is(err, errPipelineStopped) {
		logger.Info(ctx, "head subscription ended, exiting")
		return nil
	}

	if err == nil {
		logger.Info(ctx, "shutting down")
	}

	return err
}
