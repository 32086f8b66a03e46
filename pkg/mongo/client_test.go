package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekeep/pkg/mongo"
)

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty uri", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{})
		assert.ErrorIs(t, err, mongo.ErrInvalidConfig)
	})

	t.Run("unsupported scheme fails without retrying", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		_, err := mongo.New(context.Background(), mongo.Config{
			URI:            "postgres://localhost:5432",
			ConnectTimeout: time.Second,
			RetryAttempts:  5,
			RetryInterval:  time.Second,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrInvalidConfig)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestNew_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{
		URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100",
		Timeout:        200 * time.Millisecond,
		ConnectTimeout: 200 * time.Millisecond,
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mongo.New(ctx, mongo.Config{
		URI:            "mongodb://127.0.0.1:1",
		ConnectTimeout: time.Second,
		RetryAttempts:  3,
		RetryInterval:  time.Second,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
