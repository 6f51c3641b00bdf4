// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"budget/config"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword only seeds the hash used when the login email is unknown.
const dummyPassword = "budget-dummy-password-never-issued"

var defaultPasswordPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        20,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

type bcryptHasher struct {
	cost      int
	policy    config.PasswordStrengthConfig
	dummyHash string
}

// NewBcryptHasher builds the hasher from config and precomputes the dummy hash at the same cost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPasswordPolicy
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, policy)
}

// NewBcryptHasherWithCost is the config-free constructor, also used by tests with bcrypt.MinCost.
func NewBcryptHasherWithCost(cost int, policy config.PasswordStrengthConfig) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to precompute dummy hash")
	}

	return &bcryptHasher{
		cost:      cost,
		policy:    policy,
		dummyHash: string(dummy),
	}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) DummyHash() string {
	return h.dummyHash
}

// ValidatePasswordStrength enforces length bounds and character classes.
// Any character that is not an ASCII letter or digit counts as a symbol.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if h.policy.MinLength > 0 && length < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("too short")
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("too long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("missing uppercase letter")
	case h.policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("missing lowercase letter")
	case h.policy.RequireNumbers && !hasDigit:
		return domainerrors.ErrPasswordStrength.WithDetails("missing digit")
	case h.policy.RequireSpecial && !hasSymbol:
		return domainerrors.ErrPasswordStrength.WithDetails("missing symbol")
	}

	return nil
}
