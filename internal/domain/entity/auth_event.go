package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthEventType names a security-relevant session transition.
type AuthEventType string

const (
	AuthEventUserRegistered   AuthEventType = "user.registered"
	AuthEventLoginSucceeded   AuthEventType = "session.login"
	AuthEventLoginFailed      AuthEventType = "session.login_failed"
	AuthEventSessionRefreshed AuthEventType = "session.refreshed"
	AuthEventRefreshRejected  AuthEventType = "session.refresh_rejected"
	AuthEventLoggedOut        AuthEventType = "session.logout"
	AuthEventPasswordChanged  AuthEventType = "user.password_changed"
	AuthEventProfileUpdated   AuthEventType = "user.profile_updated"
)

// AuthEvent is an audit record of a session transition. UserID is nil when the
// actor could not be identified (unknown email, unknown refresh token).
type AuthEvent struct {
	ID         uuid.UUID
	Type       AuthEventType
	UserID     *int64
	RequestID  string
	Reason     string
	OccurredAt time.Time
	RecordedAt time.Time
}
