package auth

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 10

// Digest is a stored one-way password hash. The raw hash is unexported so no
// caller outside this package can read it back; only Hash produces one and
// only Verify consumes one. It still round-trips through the database via
// driver.Valuer/sql.Scanner and is invisible to JSON marshaling.
type Digest struct {
	hash string
}

// Value implements driver.Valuer so GORM can persist the digest.
func (d Digest) Value() (driver.Value, error) {
	return d.hash, nil
}

// Scan implements sql.Scanner so GORM can load the digest.
func (d *Digest) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		d.hash = ""
	case string:
		d.hash = v
	case []byte:
		d.hash = string(v)
	default:
		return fmt.Errorf("scan password digest: unsupported type %T", src)
	}
	return nil
}

// MarshalJSON always emits null. A digest never appears in a response body.
func (d Digest) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// IsZero reports whether no hash has been set.
func (d Digest) IsZero() bool {
	return d.hash == ""
}

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored digest.
type PasswordHasher interface {
	Hash(plaintext string) (Digest, error)
	Verify(plaintext string, digest Digest) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a PasswordHasher backed by bcrypt at the default cost.
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: defaultBcryptCost}
}

// NewBcryptHasherWithCost builds a PasswordHasher with an explicit bcrypt cost.
// Lower costs keep test suites fast.
func NewBcryptHasherWithCost(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (Digest, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return Digest{}, fmt.Errorf("hash password: %w", err)
	}
	return Digest{hash: string(bytes)}, nil
}

func (h *bcryptHasher) Verify(plaintext string, digest Digest) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest.hash), []byte(plaintext)) == nil
}
