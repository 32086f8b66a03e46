package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New connects to MongoDB and verifies the connection with a ping.
// Invalid configuration fails immediately; unreachable servers are retried.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("%w: empty connection uri", ErrInvalidConfig)
	}

	attempts := max(cfg.RetryAttempts, 1)
	backoff := retry.WithMaxRetries(attempts-1, retry.NewConstant(max(cfg.RetryInterval, 1)))

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.operationTimeout()).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	var client *mongo.Client
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := mongo.Connect(opts)
		if err != nil {
			// Connect only fails on bad options; retrying cannot help.
			return errors.Join(ErrInvalidConfig, err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		if err := c.Ping(pingCtx, nil); err != nil {
			_ = c.Disconnect(context.WithoutCancel(ctx))
			return retry.RetryableError(err)
		}

		client = c
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	return client, nil
}
