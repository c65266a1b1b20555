package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/bnema/testnet/internal/retry"
	"github.com/bnema/testnet/pkg/domain"
)

// Connection defaults.
const (
	DefaultMaxConnectAttempts   = 20
	DefaultConnectRetryInterval = 500 * time.Millisecond
	DefaultCallTimeout          = 30 * time.Second
)

// ConnectorConfig bounds connection establishment and every later call.
type ConnectorConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	CallTimeout   time.Duration
}

// DefaultConnectorConfig returns the connection defaults.
func DefaultConnectorConfig() ConnectorConfig {
	return ConnectorConfig{
		MaxAttempts:   DefaultMaxConnectAttempts,
		RetryInterval: DefaultConnectRetryInterval,
		CallTimeout:   DefaultCallTimeout,
	}
}

// Connector establishes orchestrator connections with bounded retry.
type Connector struct {
	cfg      ConnectorConfig
	log      zerowrap.Logger
	dialOpts []grpc.DialOption
}

// NewConnector creates a connector. Extra dial options are appended to the defaults.
func NewConnector(cfg ConnectorConfig, log zerowrap.Logger, opts ...grpc.DialOption) *Connector {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxConnectAttempts
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	return &Connector{
		cfg:      cfg,
		log:      log,
		dialOpts: append(dialOpts, opts...),
	}
}

// Connect dials endpoint until the connection is ready or the attempt budget is spent.
func (c *Connector) Connect(ctx context.Context, endpoint string) (*Client, error) {
	log := c.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "grpcapi").
		Str("endpoint", endpoint).
		Logger()

	policy := retry.Policy{MaxAttempts: c.cfg.MaxAttempts, Interval: c.cfg.RetryInterval}

	var conn *grpc.ClientConn
	attempts, err := policy.Do(ctx, func(ctx context.Context) error {
		var dialErr error
		conn, dialErr = c.dial(ctx, endpoint)
		return dialErr
	}, func(attempt int, err error, next time.Duration) {
		log.Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", next).
			Msg("orchestrator not reachable yet")
	})
	if err != nil {
		return nil, &domain.ConnectionError{
			Endpoint: endpoint,
			Attempts: attempts,
			Interval: c.cfg.RetryInterval,
			Cause:    err,
		}
	}

	log.Info().Int("attempts", attempts).Msg("connected to orchestrator")
	return newClient(conn, endpoint, c.cfg.CallTimeout, c.log), nil
}

func (c *Connector) dial(ctx context.Context, endpoint string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(endpoint, c.dialOpts...)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to create client for %s: %w", endpoint, err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if state == connectivity.Idle {
			conn.Connect()
		}
		if !conn.WaitForStateChange(waitCtx, state) {
			conn.Close()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, retry.Permanent(ctx.Err())
			}
			return nil, fmt.Errorf("timeout connecting to orchestrator at %s (last state %s)", endpoint, state)
		}
	}
}
