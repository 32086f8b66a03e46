// Package auth implements password accounts with stateless sessions and
// one-time password reset tokens.
//
// The package is split along the moving parts of the flow:
//
//   - Account and Storage describe the credential record and the store
//     contract. MemoryStorage implements it in process; the mongostore
//     subpackage implements it on MongoDB.
//   - PasswordHasher hashes and verifies passwords (bcrypt).
//   - SessionCodec issues and verifies signed session tokens that carry the
//     account id and expire after SessionTTL.
//   - ResetTokens issues high-entropy reset tokens, persists only their
//     SHA-256 digest with an expiry, and consumes them exactly once.
//   - Service orchestrates signup, signin, session checks, forgot-password
//     and reset-password on top of those parts.
//
// Failures that touch authentication are deliberately coarse. Signin
// returns ErrInvalidCredentials for both unknown emails and wrong passwords
// and spends a bcrypt comparison in both cases. ForgotPassword reports
// success for unknown emails. ResetPassword returns ErrInvalidResetToken for
// wrong, expired and already used tokens alike.
//
// Signout has no server-side state: a session token stays valid until its
// embedded expiry even after the cookie is cleared.
package auth
