// Package token generates opaque high-entropy tokens and their digests.
//
// Generate returns a hex encoded random token that is handed to a user
// exactly once. Only Hash(token) is persisted; because the token already
// carries enough entropy, a fast deterministic digest is sufficient and
// allows exact-match lookups in the store.
package token
