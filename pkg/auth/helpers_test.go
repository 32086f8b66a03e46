package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

const testSecret = "test-session-secret"

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newHasher(t *testing.T) *auth.BcryptHasher {
	t.Helper()
	h, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newSessions(t *testing.T, clock *fakeClock) *auth.SessionCodec {
	t.Helper()
	codec, err := auth.NewSessionCodec(testSecret, auth.WithSessionClock(clock.Now))
	require.NoError(t, err)
	return codec
}

func newService(t *testing.T, store auth.Storage, clock *fakeClock) *auth.Service {
	t.Helper()
	svc, err := auth.NewService(store, newSessions(t, clock),
		auth.WithHasher(newHasher(t)),
		auth.WithClock(clock.Now),
	)
	require.NoError(t, err)
	return svc
}
