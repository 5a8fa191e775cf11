// Package idgen generates the random names stored uploads are saved under.
package idgen

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewName returns a prefixed random identifier of length lowercase
// alphanumeric characters, safe for filenames and URLs.
func NewName(prefix string, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + "_" + string(buf), nil
}
