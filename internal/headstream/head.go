package headstream

import (
	"context"
	"time"

	"github.com/gabapcia/blockrelay/internal/pkg/types"
)

// HeadEvent is a single newHeads notification as decoded by a Blockchain.
// Err is set when the notification could not be decoded; the stream goes on.
type HeadEvent struct {
	Hash   string
	Number types.Hex
	Err    error
}

// ObservedHead is a head accepted into the work queue.
type ObservedHead struct {
	Hash       string
	Number     types.Hex
	ReceivedAt time.Time
}

// Blockchain opens newHeads subscriptions on a source node.
type Blockchain interface {
	// SubscribeNewHeads subscribes to new block headers. The returned channel
	// is closed when the underlying connection ends or ctx is done.
	SubscribeNewHeads(ctx context.Context) (<-chan HeadEvent, error)
}
