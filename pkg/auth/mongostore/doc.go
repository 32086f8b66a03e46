// Package mongostore implements auth.Storage on a MongoDB collection.
//
// Email uniqueness is enforced by a unique index created in EnsureIndexes,
// so concurrent signups for the same address resolve to exactly one
// account. Reset token writes and consumption are single-document atomic
// operations.
//
//	store := mongostore.New(db)
//	if err := store.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	svc, err := auth.NewService(store, sessions)
package mongostore
