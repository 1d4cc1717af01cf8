package models

import (
	"context"
	"time"
)

// Session is one authenticated browser session.
type Session struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	Token        string    `json:"token" db:"token"`
	DeviceInfo   string    `json:"deviceInfo,omitempty" db:"device_info"`
	IPAddress    string    `json:"ipAddress,omitempty" db:"ip_address"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt    time.Time `json:"expiresAt" db:"expires_at"`
	LastActivity time.Time `json:"lastActivity" db:"last_activity"`
	IsActive     bool      `json:"isActive" db:"is_active"`
}

// IsExpired checks if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// UpdateActivity updates the last activity timestamp.
func (s *Session) UpdateActivity() {
	s.LastActivity = time.Now()
}

// SessionRepository defines session data access.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	FindByUserID(ctx context.Context, userID string) ([]*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID string) error
	InvalidateExpired(ctx context.Context) error
}
