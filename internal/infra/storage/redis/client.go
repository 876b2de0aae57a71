// Package redis publishes relay reports to a Redis stream and keeps the most
// recent one in a hash for quick inspection.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

const (
	defaultStream    = "blockrelay:relayed"
	defaultStreamLen = 10000
)

type client struct {
	conn      *redis.Client
	stream    string
	streamLen int64
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	stream    string
	streamLen int64
}

// Option configures NewClient.
type Option func(*config)

// WithStream sets the stream key reports are appended to.
func WithStream(name string) Option {
	return func(c *config) {
		if name != "" {
			c.stream = name
		}
	}
}

// WithStreamLen caps the stream at roughly n entries. Zero or less keeps
// every entry.
func WithStreamLen(n int64) Option {
	return func(c *config) {
		c.streamLen = n
	}
}

// NewClient connects to addr and pings the server before returning.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		stream:    defaultStream,
		streamLen: defaultStreamLen,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn:      conn,
		stream:    cfg.stream,
		streamLen: cfg.streamLen,
	}, nil
}
