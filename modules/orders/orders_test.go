package orders_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/modules/orders"
)

type memoryRepo struct {
	mu     sync.Mutex
	orders []orders.Order
	err    error
}

func (r *memoryRepo) List(context.Context) ([]orders.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := slices.Clone(r.orders)
	slices.SortFunc(out, func(a, b orders.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r *memoryRepo) Insert(_ context.Context, o []orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.orders = append(r.orders, o...)
	return nil
}

// headerGuard admits requests carrying X-Test-Auth.
func headerGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test-Auth") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func get(t *testing.T, h http.Handler, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authed {
		req.Header.Set("X-Test-Auth", "1")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSeed(t *testing.T) {
	t.Parallel()
	repo := &memoryRepo{}
	owner := bson.NewObjectID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seeded, err := orders.Seed(context.Background(), repo, owner, 5, now)
	require.NoError(t, err)
	require.Len(t, seeded, 5)
	assert.Len(t, repo.orders, 5)

	for i, o := range seeded {
		assert.Equal(t, owner, o.AccountID)
		assert.Equal(t, 1001+i, o.Number)
		assert.NotEmpty(t, o.Customer)
		assert.NotEmpty(t, o.Product)
		assert.False(t, o.ID.IsZero())
	}
	assert.Equal(t, now, seeded[4].CreatedAt)
	assert.True(t, seeded[0].CreatedAt.Before(seeded[4].CreatedAt))

	_, err = orders.Seed(context.Background(), repo, owner, 0, now)
	assert.ErrorIs(t, err, orders.ErrInvalidSeedCount)

	boom := errors.New("insert failed")
	_, err = orders.Seed(context.Background(), &memoryRepo{err: boom}, owner, 1, now)
	assert.ErrorIs(t, err, boom)
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()
		repo := &memoryRepo{}
		_, err := orders.Seed(context.Background(), repo, bson.NewObjectID(), 3, time.Now())
		require.NoError(t, err)

		rec := get(t, orders.NewService(repo, headerGuard).Handle(), true)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Orders []map[string]any `json:"orders"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Orders, 3)
		assert.Equal(t, 1003.0, body.Orders[0]["number"])
		assert.Equal(t, 1001.0, body.Orders[2]["number"])
		for _, o := range body.Orders {
			assert.Len(t, o, 4, "only _id, number, customer and product are exposed")
			assert.Contains(t, o, "_id")
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()
		rec := get(t, orders.NewService(&memoryRepo{}, headerGuard).Handle(), true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"orders":[]}`, rec.Body.String())
	})

	t.Run("guarded", func(t *testing.T) {
		t.Parallel()
		rec := get(t, orders.NewService(&memoryRepo{}, headerGuard).Handle(), false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		repo := &memoryRepo{err: errors.New("connection reset")}
		rec := get(t, orders.NewService(repo, headerGuard).Handle(), true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
		assert.False(t, strings.Contains(rec.Body.String(), "connection reset"))
	})
}
