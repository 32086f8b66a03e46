// Package sanitizer normalizes user supplied values before they are stored
// or compared.
package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that "  A@X.com " and "a@x.com" identify the same account.
// The local part is otherwise left untouched: provider specific rewrites
// (dots, plus tags) would merge accounts the owner considers distinct.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
