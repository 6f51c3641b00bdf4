package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table. A NULL user_id marks a global category.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    *int64 `gorm:"index"`
	Name      string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	UserID     int64           `gorm:"not null;index"`
	CategoryID *int64          `gorm:"index"`
	Title      string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type       string          `gorm:"type:txn_type;not null"`
	Date       time.Time       `gorm:"type:date;not null"`
	Note       *string         `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
