package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"onboarding-engine/internal/models"
)

// PostgresRepository persists sessions in the auth_sessions table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a session repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a session, minting an ID when the caller left it blank.
func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.LastActivity.IsZero() {
		session.LastActivity = session.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_sessions (id, user_id, token, device_info, ip_address,
		       created_at, expires_at, last_activity, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		session.ID, session.UserID, session.Token, session.DeviceInfo, session.IPAddress,
		session.CreatedAt, session.ExpiresAt, session.LastActivity, session.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByToken returns the active session for token, or nil when absent.
func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token, device_info, ip_address,
		       created_at, expires_at, last_activity, is_active
		FROM auth_sessions
		WHERE token = $1 AND is_active = true`, token).Scan(
		&s.ID, &s.UserID, &s.Token, &s.DeviceInfo, &s.IPAddress,
		&s.CreatedAt, &s.ExpiresAt, &s.LastActivity, &s.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}
	return &s, nil
}

// FindByUserID returns every active session for the user, newest first.
func (r *PostgresRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, token, device_info, ip_address,
		       created_at, expires_at, last_activity, is_active
		FROM auth_sessions
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions for user: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Token, &s.DeviceInfo, &s.IPAddress,
			&s.CreatedAt, &s.ExpiresAt, &s.LastActivity, &s.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session rows: %w", err)
	}
	return sessions, nil
}

// Delete deactivates one session.
func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_sessions SET is_active = false WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteByUserID deactivates every session for the user.
func (r *PostgresRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_sessions SET is_active = false WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions for user: %w", err)
	}
	return nil
}

// InvalidateExpired deactivates sessions past their expiry.
func (r *PostgresRepository) InvalidateExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_sessions SET is_active = false WHERE expires_at < NOW() AND is_active = true`)
	if err != nil {
		return fmt.Errorf("failed to invalidate expired sessions: %w", err)
	}
	return nil
}
