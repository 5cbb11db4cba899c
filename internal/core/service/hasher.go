package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt hashing and verification. Each Hash call salts
// independently, so the same plaintext never produces the same digest twice;
// the salt and cost factor are embedded in the digest, making Verify
// self-contained.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the given bcrypt cost.
// Costs outside bcrypt's valid range fall back to the default cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted digest of plaintext safe to persist.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is
// constant-time inside bcrypt; malformed digests simply verify as false
// rather than surfacing an error to the caller.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
