package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

// MockStorage is a mock implementation of auth.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateAccount(ctx context.Context, acc *auth.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStorage) AccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}

func (m *MockStorage) AccountByID(ctx context.Context, id bson.ObjectID) (*auth.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}

func (m *MockStorage) SetResetToken(ctx context.Context, email, digest string, expiresAt time.Time) error {
	args := m.Called(ctx, email, digest, expiresAt)
	return args.Error(0)
}

func (m *MockStorage) ConsumeResetToken(ctx context.Context, digest string, now time.Time, passwordHash string) (*auth.Account, error) {
	args := m.Called(ctx, digest, now, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}
