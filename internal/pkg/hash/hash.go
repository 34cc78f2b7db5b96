package hash

import (
	"errors"
	"strings"
)

// ErrUnknownAlgorithm is returned by New for an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("hash: unknown algorithm")

// Algorithm names accepted by New.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Hash hashes a plaintext and verifies a plaintext against a stored hash.
type Hash interface {
	Hash(plaintext string) ([]byte, error)
	Verify(hashed, plaintext string) bool
}

// Options configures New.
type Options struct {
	Algorithm  string
	BcryptCost int
	Pepper     string
}

// New returns the credential hasher named by opts.Algorithm. An empty name
// selects bcrypt.
func New(opts Options) (Hash, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Algorithm)) {
	case "", AlgorithmBcrypt:
		return NewBcrypt(opts.BcryptCost, opts.Pepper), nil
	case AlgorithmArgon2id:
		return NewArgon2id(opts.Pepper), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
