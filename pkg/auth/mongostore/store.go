package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

// DefaultCollection holds one document per account.
const DefaultCollection = "accounts"

// Store is a MongoDB backed auth.Storage.
type Store struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ auth.Storage = (*Store)(nil)

type Option func(*Store)

// WithClock sets the clock used for updatedAt on reset token writes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func New(db *mongo.Database, opts ...Option) *Store {
	s := &Store{
		coll: db.Collection(DefaultCollection),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexes creates the unique email index and the reset digest index.
// It is safe to call on every start.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "resetTokenHash", Value: 1}},
			Options: options.Index().
				SetName("reset_token_hash").
				SetPartialFilterExpression(bson.D{{Key: "resetTokenHash", Value: bson.D{{Key: "$type", Value: "string"}}}}),
		},
	})
	if err != nil {
		return errors.Join(ErrIndexes, err)
	}
	return nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *auth.Account) error {
	if acc.ID.IsZero() {
		acc.ID = bson.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, fromAccount(acc)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (s *Store) AccountByID(ctx context.Context, id bson.ObjectID) (*auth.Account, error) {
	return s.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// SetResetToken overwrites any pending token in a single update keyed by
// email.
func (s *Store) SetResetToken(ctx context.Context, email, digest string, expiresAt time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "resetTokenHash", Value: digest},
			{Key: "resetTokenExpiresAt", Value: expiresAt},
			{Key: "updatedAt", Value: s.now()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}

// ConsumeResetToken matches the digest and expiry, replaces the password
// and clears the token in one FindOneAndUpdate, so a token is used at most
// once even under concurrent requests.
func (s *Store) ConsumeResetToken(ctx context.Context, digest string, now time.Time, passwordHash string) (*auth.Account, error) {
	filter := bson.D{
		{Key: "resetTokenHash", Value: digest},
		{Key: "resetTokenExpiresAt", Value: bson.D{{Key: "$gt", Value: now}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "passwordHash", Value: passwordHash},
		{Key: "resetTokenHash", Value: nil},
		{Key: "resetTokenExpiresAt", Value: nil},
		{Key: "updatedAt", Value: now},
	}}}

	var doc accountDocument
	err := s.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return doc.toAccount(), nil
}

func (s *Store) findOne(ctx context.Context, filter bson.D) (*auth.Account, error) {
	var doc accountDocument
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toAccount(), nil
}
