package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockrelay/internal/config"
	"github.com/gabapcia/blockrelay/internal/infra/blockchain/contract"
	"github.com/gabapcia/blockrelay/internal/pkg/telemetry"
	"github.com/gabapcia/blockrelay/internal/relay"
)

// ReportStore reads back relay reports.
type ReportStore interface {
	LastReport(ctx context.Context) (relay.Report, error)
	Close() error
}

// Builder wires the application's services from configuration.
type Builder interface {
	// Setup initializes logging and telemetry. The returned func flushes
	// them and releases everything the other methods opened.
	Setup(ctx context.Context, cfg config.Config) (telemetry.ShutdownFunc, error)

	// RelayService returns a pipeline that submits every block to the
	// destination contract.
	RelayService(ctx context.Context, cfg config.Config) (relay.Service, error)

	// WatchService returns a pipeline that only logs source blocks.
	WatchService(ctx context.Context, cfg config.Config) (relay.Service, error)

	// ContractReader returns a read-only client of the destination contract.
	ContractReader(cfg config.Config) (contract.Reader, error)

	// ReportStore returns the store relay reports are written to.
	ReportStore(ctx context.Context, cfg config.Config) (ReportStore, error)
}

// Run executes the blockrelay CLI with os.Args.
//
// Commands:
//
//   - `start`: relays every new source block to the destination contract.
//   - `watch`: logs every new source block and its transactions.
//   - `query`: reads data back from the destination contract or Redis.
func Run(ctx context.Context, b Builder) error {
	return newApp(b).Run(ctx, os.Args)
}

func newApp(b Builder) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockrelay",
		Description:           "Relays block header data from a source chain to a contract on a destination chain.",
		Usage:                 "blockrelay [command] [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				Sources: cli.EnvVars(config.EnvPrefix + "_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			startRelayCommand(b),
			startWatchCommand(b),
			queryCommand(b),
		},
	}
}

// setup loads the configuration named by the --config flag and initializes
// logging and telemetry.
func setup(ctx context.Context, c *cli.Command, b Builder) (config.Config, telemetry.ShutdownFunc, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, nil, err
	}

	shutdown, err := b.Setup(ctx, cfg)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, shutdown, nil
}
