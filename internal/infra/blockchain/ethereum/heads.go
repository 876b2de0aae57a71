package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/headstream"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/wsrpc"
	"github.com/gabapcia/blockrelay/internal/pkg/types"
	"github.com/gabapcia/blockrelay/internal/pkg/x/chflow"
)

// ErrHeadWithoutHash is reported for a newHeads notification lacking a hash.
var ErrHeadWithoutHash = errors.New("head notification without hash")

// headEventsBufferSize absorbs short bursts between the socket and the listener.
const headEventsBufferSize = 8

// HeadResponse is the subset of a newHeads notification the relay reads.
type HeadResponse struct {
	Hash       string    `json:"hash"`
	Number     types.Hex `json:"number"`
	ParentHash string    `json:"parentHash"`
}

func decodeHead(n wsrpc.Notification) headstream.HeadEvent {
	var head HeadResponse
	if err := json.Unmarshal(n.Result, &head); err != nil {
		return headstream.HeadEvent{Err: fmt.Errorf("%w: %w", wsrpc.ErrMalformedMessage, err)}
	}

	if head.Hash == "" {
		return headstream.HeadEvent{Number: head.Number, Err: ErrHeadWithoutHash}
	}

	return headstream.HeadEvent{Hash: head.Hash, Number: head.Number}
}

// SubscribeNewHeads dials the source node and subscribes to newHeads. Every
// notification is forwarded as a HeadEvent; undecodable ones carry Err. The
// channel is closed when the connection drops or ctx is done.
func (c *client) SubscribeNewHeads(ctx context.Context) (<-chan headstream.HeadEvent, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}

	subID, err := conn.Subscribe(ctx, "newHeads")
	if err != nil {
		conn.Close()
		return nil, err
	}

	logger.Info(ctx, "subscribed to new heads", "subscription.id", subID)

	eventsCh := make(chan headstream.HeadEvent, headEventsBufferSize)
	go func() {
		defer close(eventsCh)
		defer conn.Close()

		for {
			n, err := conn.Next(ctx)
			switch {
			case errors.Is(err, wsrpc.ErrMalformedMessage):
				if !chflow.Send(ctx, eventsCh, headstream.HeadEvent{Err: err}) {
					return
				}
				continue
			case err != nil:
				if ctx.Err() == nil {
					logger.Warn(ctx, "head subscription closed", "subscription.id", subID, "error", err)
				}
				return
			}

			if !chflow.Send(ctx, eventsCh, decodeHead(n)) {
				return
			}
		}
	}()

	return eventsCh, nil
}
