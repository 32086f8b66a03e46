package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type accountIDKey struct{}

// WithAccountID stores the authenticated account id in ctx.
func WithAccountID(ctx context.Context, id bson.ObjectID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, id)
}

// AccountIDFromContext returns the id stored by WithAccountID.
func AccountIDFromContext(ctx context.Context) (bson.ObjectID, bool) {
	id, ok := ctx.Value(accountIDKey{}).(bson.ObjectID)
	return id, ok && !id.IsZero()
}
