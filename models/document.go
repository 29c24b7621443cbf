package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file attached to a matter (engagement letters, filings,
// evidence scans). The bytes live in object storage; this row is metadata.
type Document struct {
	ID          uuid.UUID `json:"id"`
	MatterID    uuid.UUID `json:"matterId"`
	FileName    string    `json:"fileName"`
	MimeType    string    `json:"mimeType"`
	SizeBytes   int64     `json:"sizeBytes"`
	StoragePath string    `json:"-"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
