// Package ethereum adapts an Ethereum-compatible source node to the relay:
// full blocks are fetched over HTTP JSON-RPC and new heads are streamed over
// a websocket subscription.
package ethereum

import (
	"context"

	"github.com/gabapcia/blockrelay/internal/headstream"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/wsrpc"
	"github.com/gabapcia/blockrelay/internal/relay"
)

// StreamDialer opens a new websocket connection to the source node.
type StreamDialer func(ctx context.Context) (wsrpc.Conn, error)

// WebsocketDialer returns a StreamDialer connecting to endpoint.
func WebsocketDialer(endpoint string, opts ...wsrpc.Option) StreamDialer {
	return func(ctx context.Context) (wsrpc.Conn, error) {
		return wsrpc.Dial(ctx, endpoint, opts...)
	}
}

type client struct {
	conn jsonrpc.Client
	dial StreamDialer
}

var (
	_ relay.BlockFetcher    = (*client)(nil)
	_ headstream.Blockchain = (*client)(nil)
)

// NewClient returns a source node client issuing requests through conn and
// opening subscriptions through dial.
func NewClient(conn jsonrpc.Client, dial StreamDialer) *client {
	return &client{
		conn: conn,
		dial: dial,
	}
}
