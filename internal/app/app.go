// Package app wires blockrelay's components from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/blockrelay/internal/config"
	"github.com/gabapcia/blockrelay/internal/handlers/cli"
	"github.com/gabapcia/blockrelay/internal/headstream"
	"github.com/gabapcia/blockrelay/internal/infra/blockchain/contract"
	"github.com/gabapcia/blockrelay/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/blockrelay/internal/infra/storage/redis"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/blockrelay/internal/pkg/transport/http"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockrelay/internal/relay"
)

type builder struct {
	mu      sync.Mutex
	closers []func() error
}

var _ cli.Builder = (*builder)(nil)

// NewBuilder returns the cli.Builder used by the blockrelay binary.
func NewBuilder() *builder {
	return &builder{}
}

// onShutdown registers fn to run when the func returned by Setup is called.
func (b *builder) onShutdown(fn func() error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closers = append(b.closers, fn)
}

func (b *builder) closeAll() error {
	b.mu.Lock()
	closers := b.closers
	b.closers = nil
	b.mu.Unlock()

	errs := make([]error, 0, len(closers))
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i]())
	}

	return errors.Join(errs...)
}

func (b *builder) Setup(ctx context.Context, cfg config.Config) (telemetry.ShutdownFunc, error) {
	var opts []telemetry.Option
	if cfg.Telemetry.Enabled {
		opts = append(opts, telemetry.WithOTLP())
	}
	if cfg.Telemetry.MetricsAddr != "" {
		opts = append(opts, telemetry.WithPrometheus())
	}

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, opts...)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		return nil, errors.Join(fmt.Errorf("init logger: %w", err), shutdownTelemetry(ctx))
	}

	return func(ctx context.Context) error {
		err := errors.Join(b.closeAll(), shutdownTelemetry(ctx))

		// stdout does not support fsync on most platforms
		_ = logger.Sync()

		return err
	}, nil
}

// source builds the source chain client and the head stream reading from it.
func (b *builder) source(ctx context.Context, cfg config.Config) (headstream.Service, relay.BlockFetcher) {
	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Source.Timeout),
		transporthttp.WithRetryMax(cfg.Source.RetryMax),
	)

	chain := ethereum.NewClient(
		jsonrpc.NewClient(httpClient, cfg.Source.HTTPURL),
		ethereum.WebsocketDialer(cfg.Source.WSURL),
	)

	opts := []headstream.Option{headstream.WithQueueSize(cfg.Relay.QueueSize)}

	if reconnect := cfg.Relay.Reconnect; reconnect.Attempts > 0 {
		opts = append(opts, headstream.WithRetry(retry.New(
			retry.WithAttempts(reconnect.Attempts),
			retry.WithDelay(reconnect.Delay),
			retry.WithMaxDelay(reconnect.MaxDelay),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "resubscribe attempt failed", "attempt", attempt, "error", err)
			}),
		)))
	}

	return headstream.New(chain, opts...), chain
}

// destination is the contract client in both of its roles.
type destination interface {
	relay.Submitter
	contract.Reader
}

func newContract(cfg config.Destination) (destination, error) {
	c, err := contract.New(contract.Config{
		Endpoint:    cfg.RPCURL,
		Address:     cfg.ContractAddress,
		PrivateKey:  cfg.PrivateKey,
		ChainID:     cfg.ChainID,
		GasLimit:    cfg.GasLimit,
		GasPrice:    cfg.GasPrice,
		DialTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

type reportStore interface {
	relay.ReportNotifier
	cli.ReportStore
}

func newRedis(ctx context.Context, cfg config.Redis) (reportStore, error) {
	c, err := redis.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB,
		redis.WithStream(cfg.Stream),
		redis.WithStreamLen(cfg.StreamLen),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (b *builder) RelayService(ctx context.Context, cfg config.Config) (relay.Service, error) {
	submitter, err := newContract(cfg.Destination)
	if err != nil {
		return nil, err
	}

	opts := []relay.Option{relay.WithSubmitter(submitter)}

	if cfg.Redis.Enabled() {
		store, err := newRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		b.onShutdown(store.Close)

		opts = append(opts, relay.WithReportNotifier(store))
	}

	heads, fetcher := b.source(ctx, cfg)
	return relay.New(heads, fetcher, opts...), nil
}

func (b *builder) WatchService(ctx context.Context, cfg config.Config) (relay.Service, error) {
	heads, fetcher := b.source(ctx, cfg)
	return relay.New(heads, fetcher), nil
}

func (b *builder) ContractReader(cfg config.Config) (contract.Reader, error) {
	return newContract(cfg.Destination)
}

func (b *builder) ReportStore(ctx context.Context, cfg config.Config) (cli.ReportStore, error) {
	store, err := newRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return store, nil
}
