package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage abstracts where document bytes live.
type Storage interface {
	// Upload stores a file and returns its storage path.
	Upload(ctx context.Context, documentID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a file by storage path.
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a file by storage path.
	Delete(ctx context.Context, storagePath string) error
}

// Type selects the storage backend.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds storage backend configuration.
type Config struct {
	Type         Type
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a storage backend from configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal:
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/files"
		}
		return NewLocalStorage(cfg.LocalPath)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for s3 storage")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// storagePathFor builds a unique object key for a document, sharded by
// the first two id characters to keep directories shallow.
func storagePathFor(documentID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filepath.Base(filename), ext)
	baseName = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, baseName)

	id := documentID.String()
	return fmt.Sprintf("%s/%s_%s%s", id[:2], id, baseName, ext)
}
