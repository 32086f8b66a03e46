package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

func TestAccountDocument_BSONFieldNames(t *testing.T) {
	t.Parallel()

	digest := "abc"
	expires := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	doc := fromAccount(&auth.Account{
		ID:                  bson.NewObjectID(),
		Email:               "a@x.com",
		PasswordHash:        "$2a$hash",
		ResetTokenHash:      &digest,
		ResetTokenExpiresAt: &expires,
	})

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	for _, key := range []string{"_id", "email", "passwordHash", "resetTokenHash", "resetTokenExpiresAt", "createdAt", "updatedAt"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "abc", m["resetTokenHash"])
}

func TestAccountDocument_ToAccount(t *testing.T) {
	t.Parallel()

	t.Run("cleared reset fields stay nil", func(t *testing.T) {
		t.Parallel()
		acc := accountDocument{ID: bson.NewObjectID(), Email: "a@x.com"}.toAccount()
		assert.Nil(t, acc.ResetTokenHash)
		assert.Nil(t, acc.ResetTokenExpiresAt)
	})

	t.Run("half set reset fields are dropped", func(t *testing.T) {
		t.Parallel()
		digest := "abc"
		acc := accountDocument{ResetTokenHash: &digest}.toAccount()
		assert.Nil(t, acc.ResetTokenHash)
		assert.Nil(t, acc.ResetTokenExpiresAt)
	})

	t.Run("pending reset is copied", func(t *testing.T) {
		t.Parallel()
		digest := "abc"
		expires := time.Now().Add(time.Minute)
		doc := accountDocument{ResetTokenHash: &digest, ResetTokenExpiresAt: &expires}
		acc := doc.toAccount()
		require.NotNil(t, acc.ResetTokenHash)
		assert.Equal(t, digest, *acc.ResetTokenHash)
		assert.NotSame(t, doc.ResetTokenHash, acc.ResetTokenHash)
		assert.True(t, acc.ResetPending(time.Now()))
	})
}
