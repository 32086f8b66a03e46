package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

func TestMemoryStorage_CreateAndLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := auth.NewMemoryStorage()

	acc := &auth.Account{Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, store.CreateAccount(ctx, acc))
	assert.False(t, acc.ID.IsZero(), "id assigned on create")

	byEmail, err := store.AccountByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, byEmail.ID)

	byID, err := store.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	err = store.CreateAccount(ctx, &auth.Account{Email: "a@x.com"})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	_, err = store.AccountByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	_, err = store.AccountByID(ctx, bson.NewObjectID())
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := auth.NewMemoryStorage()

	acc := &auth.Account{Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, store.CreateAccount(ctx, acc))
	acc.PasswordHash = "mutated"

	got, err := store.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "h", got.PasswordHash)

	got.Email = "changed@x.com"
	again, err := store.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email)
}

func TestMemoryStorage_ResetToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := auth.NewMemoryStorage()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	acc := &auth.Account{Email: "a@x.com", PasswordHash: "old"}
	require.NoError(t, store.CreateAccount(ctx, acc))

	assert.ErrorIs(t, store.SetResetToken(ctx, "b@x.com", "d", now), auth.ErrAccountNotFound)

	require.NoError(t, store.SetResetToken(ctx, "a@x.com", "digest", now.Add(30*time.Minute)))
	pending, err := store.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, pending.ResetPending(now))

	t.Run("expired digest does not match", func(t *testing.T) {
		_, err := store.ConsumeResetToken(ctx, "digest", now.Add(30*time.Minute), "new")
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	})

	t.Run("wrong digest does not match", func(t *testing.T) {
		_, err := store.ConsumeResetToken(ctx, "other", now, "new")
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	})

	t.Run("match replaces hash and clears both fields", func(t *testing.T) {
		got, err := store.ConsumeResetToken(ctx, "digest", now, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", got.PasswordHash)
		assert.Nil(t, got.ResetTokenHash)
		assert.Nil(t, got.ResetTokenExpiresAt)

		_, err = store.ConsumeResetToken(ctx, "digest", now, "newer")
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	})
}

func TestMemoryStorage_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := auth.NewMemoryStorage()

	assert.ErrorIs(t, store.CreateAccount(ctx, &auth.Account{Email: "a@x.com"}), context.Canceled)
	_, err := store.AccountByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, context.Canceled)
}
