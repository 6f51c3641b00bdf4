// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher abstracts the slow, salted password hash.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check compares in constant time relative to the hash cost.
	Check(password, hash string) bool

	// DummyHash is a fixed hash at the configured cost, compared against when the
	// account does not exist so both login failure paths cost one comparison.
	DummyHash() string

	// ValidatePasswordStrength applies the configured policy.
	ValidatePasswordStrength(password string) error
}
