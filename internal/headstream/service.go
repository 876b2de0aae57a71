// Package headstream keeps a newHeads subscription alive and feeds every
// announced block into a bounded work queue.
//
// The subscription is supervised: when the source connection drops it is
// re-established under the configured retry policy. A full queue never
// stalls the subscription, the head is dropped with a warning instead.
package headstream

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// defaultQueueSize is the work queue capacity when none is configured.
const defaultQueueSize = 16

// Service streams observed heads.
type Service interface {
	// Start subscribes to new heads and returns the work queue. The initial
	// subscription happens before Start returns so dial errors surface here.
	// The queue is closed when the subscription can no longer be kept alive
	// or ctx is done.
	Start(ctx context.Context) (<-chan ObservedHead, error)

	// Close stops the subscription and waits for the queue to be closed. It
	// is safe to call on a service that was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	blockchain Blockchain
	retry      retry.Retry
	queueSize  int
	metrics    metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan ObservedHead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	eventsCh, err := s.blockchain.SubscribeNewHeads(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	var (
		headsCh = make(chan ObservedHead, s.queueSize)
		done    = make(chan struct{})
	)

	go func() {
		defer close(done)
		defer close(headsCh)

		s.supervise(ctx, eventsCh, headsCh)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return headsCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// supervise forwards heads until the subscription ends, then resubscribes
// while the retry policy allows it.
func (s *service) supervise(ctx context.Context, eventsCh <-chan HeadEvent, headsCh chan<- ObservedHead) {
	for {
		s.forward(ctx, eventsCh, headsCh)

		if ctx.Err() != nil {
			return
		}

		if s.retry == nil {
			logger.Warn(ctx, "head subscription ended")
			return
		}

		logger.Warn(ctx, "head subscription ended, reconnecting")

		err := s.retry.Execute(ctx, func() error {
			ch, err := s.blockchain.SubscribeNewHeads(ctx)
			if err != nil {
				return err
			}

			eventsCh = ch
			return nil
		})
		if err != nil {
			logger.Error(ctx, "head subscription could not be restored", "error", err)
			return
		}

		s.metrics.reconnects.Add(ctx, 1)
		logger.Info(ctx, "head subscription restored")
	}
}

// forward drains eventsCh into headsCh until eventsCh is closed or ctx is done.
func (s *service) forward(ctx context.Context, eventsCh <-chan HeadEvent, headsCh chan<- ObservedHead) {
	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		if event.Err != nil {
			logger.Warn(ctx, "head notification skipped", "error", event.Err)
			continue
		}

		if event.Hash == "" {
			logger.Warn(ctx, "head notification without hash skipped", "block.number", event.Number.String())
			continue
		}

		s.metrics.received.Add(ctx, 1)

		head := ObservedHead{
			Hash:       event.Hash,
			Number:     event.Number,
			ReceivedAt: time.Now(),
		}

		if !chflow.TrySend(headsCh, head) {
			s.metrics.dropped.Add(ctx, 1)
			logger.Warn(ctx, "work queue full, head dropped",
				"block.hash", head.Hash,
				"block.number", head.Number.String(),
			)
			continue
		}

		logger.Debug(ctx, "head queued", "block.hash", head.Hash, "block.number", head.Number.String())
	}
}

type config struct {
	retry     retry.Retry
	queueSize int
}

// Option configures New.
type Option func(*config)

// New returns a Service reading heads from blockchain. Without WithRetry the
// service stops at the first disconnection.
func New(blockchain Blockchain, opts ...Option) *service {
	cfg := config{
		retry:     nil,
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain: blockchain,
		retry:      cfg.retry,
		queueSize:  cfg.queueSize,
		metrics:    newMetrics(),
	}
}

// WithRetry sets the policy used to resubscribe after a disconnection.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithQueueSize sets the work queue capacity. Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueSize = n
		}
	}
}
