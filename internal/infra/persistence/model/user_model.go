package model

import "time"

// UserModel mirrors the 'users' table. Email uniqueness is enforced by a LOWER(email) index.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(20);not null"`
	LastName     string `gorm:"type:varchar(20);not null"`
	Email        string `gorm:"type:varchar(254);not null"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
