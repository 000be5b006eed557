package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/mikekulinski/zkcli/pkg/logging"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
	"github.com/rs/zerolog"
)

var (
	ErrAddressRequired  = errors.New("client: address required")
	ErrConnectExhausted = errors.New("client: connect attempts exhausted")
	ErrConnectTimeout   = errors.New("client: timed out waiting for session")
	ErrEventsClosed     = errors.New("client: event channel closed before session was established")
)

type Config struct {
	// ConnectTimeout bounds a single attempt, from dial until the session is established.
	ConnectTimeout time.Duration
	// SessionTimeout is negotiated with the server.
	SessionTimeout time.Duration
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// RetryDelay is the fixed pause between two attempts.
	RetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 5 * time.Second,
		SessionTimeout: 5 * time.Second,
		MaxAttempts:    10,
		RetryDelay:     10 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got %s", c.ConnectTimeout)
	}
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("session timeout must be positive, got %s", c.SessionTimeout)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max connect attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative, got %s", c.RetryDelay)
	}
	return nil
}

// DialFunc makes one attempt at opening a session, giving up after timeout.
type DialFunc func(ctx context.Context, address string, timeout time.Duration) (zookeeper.Conn, error)

// Connector opens short-lived sessions against one address, retrying failed attempts.
type Connector struct {
	address string
	cfg     Config
	logger  zerolog.Logger
	dial    DialFunc
}

type Option func(*Connector)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Connector) {
		c.logger = logger
	}
}

// WithDialFunc replaces the go-zookeeper dialer.
func WithDialFunc(dial DialFunc) Option {
	return func(c *Connector) {
		c.dial = dial
	}
}

func NewConnector(address string, cfg Config, opts ...Option) (*Connector, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Connector{
		address: address,
		cfg:     cfg,
		logger:  zerolog.Nop(),
	}
	c.dial = c.dialZK
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Connect tries up to MaxAttempts times to open a session. Once they are all used
// up it returns an error wrapping both ErrConnectExhausted and the last cause.
func (c *Connector) Connect(ctx context.Context) (*Client, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		conn, err := c.dial(ctx, c.address, c.cfg.ConnectTimeout)
		if err == nil {
			c.logger.Debug().Int("attempt", attempt).Str("address", c.address).Msg("connected to zookeeper")
			return NewClient(conn), nil
		}
		lastErr = err
		c.logger.Warn().Err(err).Int("attempt", attempt).Str("address", c.address).Msg("error connecting to zookeeper")

		if attempt == c.cfg.MaxAttempts {
			break
		}
		if err := sleep(ctx, c.cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("connecting to %s: %w", c.address, err)
		}
	}
	return nil, fmt.Errorf("%w (%d attempts to %s): %w", ErrConnectExhausted, c.cfg.MaxAttempts, c.address, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// dialZK opens a go-zookeeper connection and waits for it to report a session.
// zk.Connect returns before the session exists, so the wait is what enforces timeout.
func (c *Connector) dialZK(ctx context.Context, address string, timeout time.Duration) (zookeeper.Conn, error) {
	conn, events, err := zk.Connect(
		splitServers(address),
		c.cfg.SessionTimeout,
		zk.WithLogger(logging.ZKLogger{Logger: c.logger}),
	)
	if err != nil {
		return nil, err
	}
	if err := awaitSession(ctx, events, timeout); err != nil {
		conn.Close()
		return nil, err
	}
	// Watches are never set, so later events are only session state changes.
	go discardEvents(events)
	return conn, nil
}

func awaitSession(ctx context.Context, events <-chan zk.Event, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return ErrEventsClosed
			}
			switch ev.State {
			case zk.StateHasSession:
				return nil
			case zk.StateExpired, zk.StateAuthFailed:
				return fmt.Errorf("client: session %s", ev.State)
			}
		case <-timer.C:
			return fmt.Errorf("%w after %s", ErrConnectTimeout, timeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func discardEvents(events <-chan zk.Event) {
	for range events {
	}
}

// splitServers turns "host1:2181,host2:2181" into the server list zk.Connect takes.
func splitServers(address string) []string {
	var servers []string
	for _, s := range strings.Split(address, ",") {
		if s = strings.TrimSpace(s); s != "" {
			servers = append(servers, s)
		}
	}
	return servers
}
