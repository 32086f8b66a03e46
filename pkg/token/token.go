package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// DefaultSize is the number of random bytes in a token (256 bits).
const DefaultSize = 32

// Generate returns size random bytes encoded as lower-case hex.
func Generate(size int) (string, error) {
	return generate(rand.Reader, size)
}

func generate(r io.Reader, size int) (string, error) {
	if size <= 0 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.Join(ErrRandomSource, fmt.Errorf("read %d bytes: %w", size, err))
	}

	return hex.EncodeToString(buf), nil
}

// Hash returns the hex encoded SHA-256 digest of token.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
