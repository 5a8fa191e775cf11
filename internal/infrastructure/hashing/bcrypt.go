// Package hashing provides the bcrypt-backed password capability used by
// the room access gate.
package hashing

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used for room passwords when none is
// configured.
const DefaultCost = 10

// Bcrypt hashes and verifies room passwords.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost; non-positive values fall
// back to DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash generates a bcrypt hash of the given password.
func (b *Bcrypt) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks if the provided password matches the hash.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
