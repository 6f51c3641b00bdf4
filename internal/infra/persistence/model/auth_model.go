package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the hash of the secret is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    int64     `gorm:"not null;index"`
	TokenHash string    `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// AuthEventModel mirrors the 'auth_events' audit table.
type AuthEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type       string    `gorm:"type:varchar(64);not null"`
	UserID     *int64
	RequestID  string `gorm:"type:varchar(64)"`
	Reason     string `gorm:"type:varchar(128)"`
	OccurredAt time.Time
	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AuthEventModel) TableName() string {
	return "auth_events"
}
