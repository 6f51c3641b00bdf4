// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"
)

const (
	NameMinLength  = 2
	NameMaxLength  = 20
	EmailMaxLength = 254
)

var personNamePattern = regexp.MustCompile(`^[A-Za-z'.]+( [A-Za-z'.]+)*$`)

// User is the account owner of a budget. Email is stored trimmed and lowercased.
type User struct {
	ID           int64     // Numeric identity, also carried in the access token claims.
	FirstName    string    // Given name, 2-20 letters/spaces/apostrophes/dots.
	LastName     string    // Family name, same rules as FirstName.
	Email        string    // Unique case-insensitively; the login identifier.
	PasswordHash string    // bcrypt hash. Never serialized to clients.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last profile or password change.
}

// ValidPersonName reports whether an already-trimmed first or last name is acceptable.
func ValidPersonName(name string) bool {
	n := len(name)

	return n >= NameMinLength && n <= NameMaxLength && personNamePattern.MatchString(name)
}

// NormalizeEmail is the single canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
