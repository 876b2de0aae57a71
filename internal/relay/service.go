// Package relay runs the block relay pipeline: for every head announced by
// the source chain it fetches the full block, extracts the relayed fields and
// submits them to the destination contract.
//
// Heads are processed by a single worker in arrival order, so at most one
// destination transaction is being built at any time. Failures are logged and
// the block is skipped; nothing is retried.
//
// Without a Submitter the service runs in watch mode and only logs each
// block's transactions.
package relay

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/blockrelay/internal/headstream"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the relay pipeline lifecycle.
type Service interface {
	// Start subscribes to new heads and launches the worker.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close stops the subscription and waits for the worker to return. It is
	// safe to call Close even if the service was never started.
	Close()

	// Done is closed once the worker has returned, either because the head
	// subscription ended for good or because the service was stopped. It
	// returns nil before Start.
	Done() <-chan struct{}
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	done      chan struct{}

	heads     headstream.Service
	fetcher   BlockFetcher
	submitter Submitter
	notifier  ReportNotifier

	metrics metrics
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	headsCh, err := s.heads.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.work(ctx, headsCh)
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		s.heads.Close()
		<-done
	}
	s.isStarted = true

	if s.submitter == nil {
		logger.Info(ctx, "watching source chain")
	} else {
		logger.Info(ctx, "relaying source chain")
	}

	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// work processes heads one at a time until the queue is closed or ctx is done.
func (s *service) work(ctx context.Context, headsCh <-chan headstream.ObservedHead) {
	for {
		head, ok := chflow.Receive(ctx, headsCh)
		if !ok {
			logger.Info(ctx, "relay worker stopped")
			return
		}

		s.process(ctx, head)
	}
}

func (s *service) process(ctx context.Context, head headstream.ObservedHead) {
	ctx = logger.Derive(ctx, "block.hash", head.Hash)

	ctx, span := s.tracer.Start(ctx, "relay.process", trace.WithAttributes(
		attribute.String("block.hash", head.Hash),
	))
	defer span.End()

	block, err := s.fetch(ctx, head.Hash)
	if err != nil {
		s.metrics.fail(ctx, stageFetch)
		span.SetStatus(codes.Error, "fetch failed")
		logger.Error(ctx, "block fetch failed, skipping", "error", err)
		return
	}

	payload := Transform(block)
	logger.Info(ctx, "block received",
		"block.number", block.Number.String(),
		"block.parent_hash", payload.ParentHash,
		"block.transactions_root", payload.TransactionsRoot,
	)

	if s.submitter == nil {
		s.logTransactions(ctx, block)
		return
	}

	txHash, err := s.submit(ctx, payload)
	if err != nil {
		s.metrics.fail(ctx, stageSubmit)
		span.SetStatus(codes.Error, "submit failed")
		logger.Error(ctx, "block data submission failed, skipping", "error", err)
		return
	}

	s.metrics.relayed.Add(ctx, 1)
	logger.Info(ctx, "block data relayed", "tx.hash", txHash)

	if err := s.notifier.NotifyBlockRelayed(ctx, newReport(block, payload, txHash)); err != nil {
		logger.Warn(ctx, "relay report not delivered", "error", err)
	}
}

func (s *service) fetch(ctx context.Context, hash string) (Block, error) {
	ctx, span := s.tracer.Start(ctx, "relay.fetch")
	defer span.End()

	block, err := s.fetcher.FetchBlockByHash(ctx, hash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Block{}, err
	}

	span.SetAttributes(attribute.Int("block.transactions", len(block.Transactions)))
	return block, nil
}

func (s *service) submit(ctx context.Context, payload Payload) (string, error) {
	ctx, span := s.tracer.Start(ctx, "relay.submit")
	defer span.End()

	txHash, err := s.submitter.StoreBlockData(ctx, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.String("tx.hash", txHash))
	return txHash, nil
}

func (s *service) logTransactions(ctx context.Context, block Block) {
	logger.Info(ctx, "processing block",
		"block.number", block.Number.String(),
		"block.transactions", len(block.Transactions),
	)

	for _, tx := range block.Transactions {
		to := tx.To
		if tx.IsContractCreation() {
			to = "contract creation"
		}

		logger.Info(ctx, "transaction", "tx.hash", tx.Hash, "tx.from", tx.From, "tx.to", to)
	}
}

type config struct {
	submitter Submitter
	notifier  ReportNotifier
}

// Option configures New.
type Option func(*config)

// New returns a relay Service reading heads from heads and fetching blocks
// through fetcher.
func New(heads headstream.Service, fetcher BlockFetcher, opts ...Option) *service {
	cfg := config{
		submitter: nil,
		notifier:  nopReportNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		heads:     heads,
		fetcher:   fetcher,
		submitter: cfg.submitter,
		notifier:  cfg.notifier,
		metrics:   newMetrics(),
		tracer:    otel.Tracer(instrumentationName),
	}
}

// WithSubmitter enables relay mode: every fetched block is submitted through s.
func WithSubmitter(s Submitter) Option {
	return func(c *config) {
		c.submitter = s
	}
}

// WithReportNotifier sets the sink notified after each successful submission.
func WithReportNotifier(n ReportNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}
