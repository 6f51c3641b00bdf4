package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPersonName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Jo", true},
		{"Mary Ann", true},
		{"O'Neil", true},
		{"St. John", true},
		{"J", false},
		{"Abcdefghijklmnopqrstu", false},
		{"Anna  Lee", false},
		{" Anna", false},
		{"Zoë", false},
		{"R2D2", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPersonName(tt.name))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestRefreshTokenIsExpired(t *testing.T) {
	token := &RefreshToken{}
	now := token.ExpiresAt

	assert.True(t, token.IsExpired(now), "expiry instant itself is expired")
	assert.False(t, token.IsExpired(now.Add(-1)))
	assert.True(t, token.IsExpired(now.Add(1)))
}

func TestCategoryVisibility(t *testing.T) {
	owner := int64(5)
	global := &Category{}
	private := &Category{UserID: &owner}

	assert.True(t, global.IsGlobal())
	assert.True(t, global.VisibleTo(99))
	assert.False(t, private.IsGlobal())
	assert.True(t, private.VisibleTo(5))
	assert.False(t, private.VisibleTo(6))
}
