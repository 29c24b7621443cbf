package repository

import (
	"context"
	"errors"

	"lawmatters-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerRepository handles database operations for customers.
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, phone, lawyer_id)
		VALUES ($1, $2, $3)
		RETURNING id, version, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		customer.Name,
		customer.Phone,
		customer.LawyerID,
	).Scan(&customer.ID, &customer.Version, &customer.CreatedAt, &customer.UpdatedAt)
}

// GetByID retrieves a customer by ID. Returns (nil, nil) when the customer
// does not exist. OpenMattersCount is not populated here.
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, name, phone, lawyer_id, version, created_at, updated_at
		FROM customers
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.LawyerID,
		&customer.Version,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// List retrieves customers with their open-matter counts, computed at query
// time. A nil lawyerID returns every customer (admin view); otherwise only
// customers owned by that lawyer.
func (r *CustomerRepository) List(ctx context.Context, lawyerID *uuid.UUID) ([]*models.Customer, error) {
	query := `
		SELECT c.id, c.name, c.phone, c.lawyer_id, c.version, c.created_at, c.updated_at,
			COUNT(m.id) FILTER (WHERE m.status = 'Open') AS open_matters
		FROM customers c
		LEFT JOIN matters m ON m.customer_id = c.id
		WHERE $1::uuid IS NULL OR c.lawyer_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.LawyerID,
			&customer.Version,
			&customer.CreatedAt,
			&customer.UpdatedAt,
			&customer.OpenMattersCount,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

// CountOpenMatters returns how many of the customer's matters are Open.
func (r *CustomerRepository) CountOpenMatters(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM matters WHERE customer_id = $1 AND status = 'Open'`
	err := r.db.QueryRow(ctx, query, customerID).Scan(&count)
	return count, err
}

// Update writes name and phone, guarded by the customer's version. Returns
// false when no row matched (the customer vanished or another writer got
// there first); the caller distinguishes the two.
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) (bool, error) {
	query := `
		UPDATE customers SET
			name = $3,
			phone = $4,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		customer.ID,
		customer.Version,
		customer.Name,
		customer.Phone,
	).Scan(&customer.Version, &customer.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Delete removes a customer. Matters (and their documents) go with it via
// FK cascade. Returns false when the customer did not exist.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
