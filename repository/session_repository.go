package repository

import (
	"context"
	"errors"
	"time"

	"lawmatters-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles database operations for login sessions.
// Only token hashes are stored, never the opaque token itself.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)
}

// GetByTokenHash retrieves a session by its token hash. Returns (nil, nil)
// when no such session exists. Expiry is the caller's concern.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM sessions
		WHERE token_hash = $1`

	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ExtendExpiry pushes the session's sliding window forward.
func (r *SessionRepository) ExtendExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE sessions SET expires_at = $2 WHERE token_hash = $1`
	_, err := r.db.Exec(ctx, query, tokenHash, expiresAt)
	return err
}

// DeleteByTokenHash removes a session. Deleting a missing session is not
// an error.
func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	query := `DELETE FROM sessions WHERE token_hash = $1`
	_, err := r.db.Exec(ctx, query, tokenHash)
	return err
}
