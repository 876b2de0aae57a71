// Package wsrpc implements the streaming side of JSON-RPC 2.0 over a
// websocket: one eth_subscribe request followed by an unbounded stream of
// eth_subscription notifications.
package wsrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gabapcia/blockrelay/internal/pkg/transport/jsonrpc"
)

const (
	subscribeMethod    = "eth_subscribe"
	notificationMethod = "eth_subscription"
)

var (
	// ErrConnectionClosed is returned once the underlying websocket is gone.
	// The Conn cannot be used afterwards.
	ErrConnectionClosed = errors.New("websocket connection closed")

	// ErrMalformedMessage is returned for a frame that is not a valid
	// notification. The Conn stays usable.
	ErrMalformedMessage = errors.New("malformed websocket message")
)

// Notification is a single eth_subscription push.
type Notification struct {
	Subscription string
	Result       json.RawMessage
}

// message covers every shape the node sends on the socket: replies carry
// id and result or error, notifications carry method and params.
type message struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  *struct {
		Subscription string          `json:"subscription"`
		Result       json.RawMessage `json:"result"`
	} `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *jsonrpc.Error  `json:"error,omitempty"`
}

type subscribeRequest struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// Conn is a websocket carrying JSON-RPC subscriptions.
type Conn interface {
	// Subscribe sends eth_subscribe with params and waits for the node to
	// acknowledge it, returning the subscription id.
	Subscribe(ctx context.Context, params ...any) (string, error)

	// Next blocks until the next eth_subscription notification arrives, ctx
	// is done, or the connection fails. Frames with any other method are
	// skipped.
	Next(ctx context.Context) (Notification, error)

	// Close closes the websocket.
	Close() error
}

type conn struct {
	ws *websocket.Conn

	writeMu sync.Mutex

	// notifications read while waiting for a subscribe reply
	pending []Notification
}

var _ Conn = (*conn)(nil)

// config holds dial settings.
type config struct {
	handshakeTimeout time.Duration
	readLimit        int64
}

// Option configures Dial.
type Option func(*config)

// WithHandshakeTimeout bounds the websocket opening handshake. Default: 10s.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.handshakeTimeout = d
	}
}

// WithReadLimit sets the maximum size in bytes of a single frame. Default: 16 MiB.
func WithReadLimit(n int64) Option {
	return func(c *config) {
		c.readLimit = n
	}
}

// Dial opens a websocket to endpoint (ws:// or wss://).
func Dial(ctx context.Context, endpoint string, opts ...Option) (*conn, error) {
	cfg := config{
		handshakeTimeout: 10 * time.Second,
		readLimit:        16 << 20,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dialer := websocket.Dialer{HandshakeTimeout: cfg.handshakeTimeout}

	ws, res, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if res != nil && res.Body != nil {
		res.Body.Close()
	}

	ws.SetReadLimit(cfg.readLimit)

	return &conn{ws: ws}, nil
}

func (c *conn) write(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.ws.WriteJSON(v)
}

// read returns the next raw frame. Cancelling ctx interrupts a blocked read
// by moving the read deadline, which also renders the socket unusable.
func (c *conn) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stop := context.AfterFunc(ctx, func() {
		c.ws.SetReadDeadline(time.Now())
	})
	defer stop()

	_, data, err := c.ws.ReadMessage()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	return data, nil
}

func (c *conn) Subscribe(ctx context.Context, params ...any) (string, error) {
	if params == nil {
		params = []any{}
	}

	id := uuid.NewString()
	if err := c.write(subscribeRequest{JsonRPC: "2.0", ID: id, Method: subscribeMethod, Params: params}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	for {
		data, err := c.read(ctx)
		if err != nil {
			return "", err
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		if msg.Method == notificationMethod && msg.Params != nil {
			c.pending = append(c.pending, Notification{Subscription: msg.Params.Subscription, Result: msg.Params.Result})
			continue
		}

		var replyID string
		if err := json.Unmarshal(msg.ID, &replyID); err != nil || replyID != id {
			continue
		}

		if msg.Error != nil {
			return "", fmt.Errorf("%w: [%d] - %s", jsonrpc.ErrProviderReturnedError, msg.Error.Code, msg.Error.Message)
		}

		var subID string
		if err := json.Unmarshal(msg.Result, &subID); err != nil {
			return "", fmt.Errorf("%w: subscription id: %w", ErrMalformedMessage, err)
		}

		return subID, nil
	}
}

func (c *conn) Next(ctx context.Context) (Notification, error) {
	if len(c.pending) > 0 {
		n := c.pending[0]
		c.pending = c.pending[1:]
		return n, nil
	}

	for {
		data, err := c.read(ctx)
		if err != nil {
			return Notification{}, err
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			return Notification{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
		}

		if msg.Method != notificationMethod {
			continue
		}

		if msg.Params == nil {
			return Notification{}, fmt.Errorf("%w: notification without params", ErrMalformedMessage)
		}

		return Notification{Subscription: msg.Params.Subscription, Result: msg.Params.Result}, nil
	}
}

func (c *conn) Close() error {
	c.writeMu.Lock()
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	c.writeMu.Unlock()

	return c.ws.Close()
}
