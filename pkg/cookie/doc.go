// Package cookie sets, reads and clears HTTP cookies with secure defaults.
//
// A Manager is built once with the deployment's attributes (Path=/,
// HttpOnly and SameSite=Lax unless overridden, Secure in production) and
// applies them to every cookie it writes, so set and delete always agree:
//
//	m := cookie.New(cookie.WithSecure(env.IsProduction()))
//	m.Set(w, "auth_token", tok, cookie.WithMaxAge(8*60*60))
//	m.Delete(w, "auth_token")
package cookie
