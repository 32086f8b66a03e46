// Package account serves the JSON authentication API.
//
// Routes, relative to the mount point (usually /api/auth):
//
//	POST /signup   create an account and start a session
//	POST /signin   start a session
//	POST /signout  clear the session cookie
//	GET  /me       return the signed in account
//	POST /forgot   issue a password reset token
//	POST /reset    set a new password with a reset token
//
// The session is a signed token in the auth_token cookie. Signout only
// clears the cookie: a copied token stays valid until it expires.
//
// RequireSession guards any other router that needs an authenticated
// account and stores the account id in the request context.
package account
