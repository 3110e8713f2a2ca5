package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the pluggable hashing policy used by the user service.
// The concrete algorithm can be swapped without touching service logic.
type PasswordHasher interface {
	// Hash produces a one-way digest of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches a previously produced digest.
	// The comparison does not leak, through its error, whether the digest or
	// the plaintext was at fault.
	Verify(plaintext string, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. The work factor makes
// hashing deliberately expensive, bounding register/login throughput.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost. A cost below
// bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
