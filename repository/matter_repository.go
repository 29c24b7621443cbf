package repository

import (
	"context"
	"errors"

	"lawmatters-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MatterRepository handles database operations for matters.
type MatterRepository struct {
	db *pgxpool.Pool
}

// NewMatterRepository creates a new matter repository.
func NewMatterRepository(db *pgxpool.Pool) *MatterRepository {
	return &MatterRepository{db: db}
}

// Create inserts a new matter.
func (r *MatterRepository) Create(ctx context.Context, matter *models.Matter) error {
	query := `
		INSERT INTO matters (customer_id, title, description, open_date, close_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		matter.CustomerID,
		matter.Title,
		matter.Description,
		matter.OpenDate,
		matter.CloseDate,
		matter.Status,
	).Scan(&matter.ID, &matter.Version, &matter.CreatedAt, &matter.UpdatedAt)
}

// GetByID retrieves a matter scoped to a customer. A matter that exists
// under a different customer is (nil, nil) here, same as a missing one.
func (r *MatterRepository) GetByID(ctx context.Context, customerID, matterID uuid.UUID) (*models.Matter, error) {
	matter := &models.Matter{}
	query := `
		SELECT id, customer_id, title, description, open_date, close_date, status,
			version, created_at, updated_at
		FROM matters
		WHERE id = $1 AND customer_id = $2`

	err := r.db.QueryRow(ctx, query, matterID, customerID).Scan(
		&matter.ID,
		&matter.CustomerID,
		&matter.Title,
		&matter.Description,
		&matter.OpenDate,
		&matter.CloseDate,
		&matter.Status,
		&matter.Version,
		&matter.CreatedAt,
		&matter.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return matter, nil
}

// ListByCustomer retrieves all matters for a customer.
func (r *MatterRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Matter, error) {
	query := `
		SELECT id, customer_id, title, description, open_date, close_date, status,
			version, created_at, updated_at
		FROM matters
		WHERE customer_id = $1
		ORDER BY open_date DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matters []*models.Matter
	for rows.Next() {
		matter := &models.Matter{}
		err := rows.Scan(
			&matter.ID,
			&matter.CustomerID,
			&matter.Title,
			&matter.Description,
			&matter.OpenDate,
			&matter.CloseDate,
			&matter.Status,
			&matter.Version,
			&matter.CreatedAt,
			&matter.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		matters = append(matters, matter)
	}

	return matters, rows.Err()
}

// Update writes the mutable fields, guarded by the matter's version.
// Returns false when no row matched; the caller re-checks existence to
// tell a concurrent write from a deleted row.
func (r *MatterRepository) Update(ctx context.Context, matter *models.Matter) (bool, error) {
	query := `
		UPDATE matters SET
			title = $3,
			description = $4,
			open_date = $5,
			close_date = $6,
			status = $7,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		matter.ID,
		matter.Version,
		matter.Title,
		matter.Description,
		matter.OpenDate,
		matter.CloseDate,
		matter.Status,
	).Scan(&matter.Version, &matter.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Exists reports whether a matter row is still present, regardless of
// customer scoping.
func (r *MatterRepository) Exists(ctx context.Context, matterID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM matters WHERE id = $1)`
	err := r.db.QueryRow(ctx, query, matterID).Scan(&exists)
	return exists, err
}
