package repository

import (
	"context"
	"errors"

	"lawmatters-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for matter documents.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document metadata row.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (matter_id, file_name, mime_type, size_bytes, storage_path, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		doc.MatterID,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		doc.StoragePath,
		doc.UploadedBy,
	).Scan(&doc.ID, &doc.CreatedAt)
}

// GetByID retrieves a document scoped to a matter. Returns (nil, nil) when
// no such document exists under that matter.
func (r *DocumentRepository) GetByID(ctx context.Context, matterID, documentID uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, matter_id, file_name, mime_type, size_bytes, storage_path, uploaded_by, created_at
		FROM documents
		WHERE id = $1 AND matter_id = $2`

	err := r.db.QueryRow(ctx, query, documentID, matterID).Scan(
		&doc.ID,
		&doc.MatterID,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&doc.StoragePath,
		&doc.UploadedBy,
		&doc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListByMatter retrieves all documents attached to a matter.
func (r *DocumentRepository) ListByMatter(ctx context.Context, matterID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT id, matter_id, file_name, mime_type, size_bytes, storage_path, uploaded_by, created_at
		FROM documents
		WHERE matter_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, matterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.MatterID,
			&doc.FileName,
			&doc.MimeType,
			&doc.SizeBytes,
			&doc.StoragePath,
			&doc.UploadedBy,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Delete removes a document row. Returns false when it did not exist.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
