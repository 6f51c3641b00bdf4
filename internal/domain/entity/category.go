package entity

import "time"

// Category tags transactions. A nil UserID marks a global category visible to everyone.
type Category struct {
	ID        int64
	UserID    *int64
	Name      string
	CreatedAt time.Time
}

// IsGlobal reports whether the category is shared by all users.
func (c *Category) IsGlobal() bool {
	return c.UserID == nil
}

// VisibleTo reports whether userID may attach transactions to this category.
func (c *Category) VisibleTo(userID int64) bool {
	return c.UserID == nil || *c.UserID == userID
}
