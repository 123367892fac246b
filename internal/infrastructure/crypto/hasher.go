// Package crypto provides the password hashers behind ports.PasswordHasher.
package crypto

import (
	"fmt"
	"strings"

	"github.com/catalogo/catalog-api/internal/core/ports"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Hasher hashes with the configured algorithm and verifies with whichever
// algorithm produced the stored hash, so switching algorithms does not lock
// existing customers out.
type Hasher struct {
	primary ports.PasswordHasher
	bcrypt  *BcryptHasher
	argon2  *Argon2Hasher
}

func NewHasher(algorithm string, bcryptCost int) (*Hasher, error) {
	h := &Hasher{
		bcrypt: NewBcryptHasher(bcryptCost),
		argon2: NewArgon2Hasher(DefaultArgon2Params),
	}
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBcrypt:
		h.primary = h.bcrypt
	case AlgorithmArgon2id:
		h.primary = h.argon2
	default:
		return nil, fmt.Errorf("crypto: unknown hash algorithm %q", algorithm)
	}
	return h, nil
}

func (h *Hasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *Hasher) Verify(password, hash string) bool {
	if strings.HasPrefix(hash, argon2Prefix) {
		return h.argon2.Verify(password, hash)
	}
	return h.bcrypt.Verify(password, hash)
}
