// Package binder decodes HTTP request bodies into typed request structs.
//
// JSON returns a binder that accepts only application/json bodies, caps the
// body at DefaultMaxJSONSize, rejects unknown fields and rejects trailing
// data after the first JSON value. Every failure wraps one of the package
// sentinels so handlers can answer with a single "invalid body" response:
//
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseJSON) etc.
//	}
package binder
