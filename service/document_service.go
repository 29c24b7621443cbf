package service

import (
	"context"
	"io"

	"lawmatters-backend/models"
	"lawmatters-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentRepo is the minimal document repository needed by the document
// service.
type DocumentRepo interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, matterID, documentID uuid.UUID) (*models.Document, error)
	ListByMatter(ctx context.Context, matterID uuid.UUID) ([]*models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// DocumentService handles matter document attachments. Access is gated
// exactly like matters: through the owning customer.
type DocumentService struct {
	documentRepo DocumentRepo
	matterRepo   MatterRepo
	customerRepo CustomerRepo
	storage      storage.Storage
	logger       *zap.Logger
}

// NewDocumentService returns a DocumentService with the given dependencies.
func NewDocumentService(documentRepo DocumentRepo, matterRepo MatterRepo, customerRepo CustomerRepo, store storage.Storage, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		matterRepo:   matterRepo,
		customerRepo: customerRepo,
		storage:      store,
		logger:       logger,
	}
}

// resolveMatter applies the customer access chain and then resolves the
// matter under it.
func (s *DocumentService) resolveMatter(ctx context.Context, principal *models.User, customerID, matterID uuid.UUID) (*models.Matter, error) {
	if _, err := authorizeCustomer(ctx, s.customerRepo, principal, customerID); err != nil {
		return nil, err
	}

	matter, err := s.matterRepo.GetByID(ctx, customerID, matterID)
	if err != nil {
		return nil, err
	}
	if matter == nil {
		return nil, ErrMatterNotFound
	}

	return matter, nil
}

// UploadDocumentRequest represents a request to attach a file to a matter.
type UploadDocumentRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	MatterID   uuid.UUID
	FileName   string
	MimeType   string
	SizeBytes  int64
	Data       io.Reader
}

// UploadDocumentResult represents the result of uploading a document.
type UploadDocumentResult struct {
	Document *models.Document
}

// UploadDocument stores the file bytes and records metadata. If the
// metadata insert fails the stored object is removed again.
func (s *DocumentService) UploadDocument(ctx context.Context, req UploadDocumentRequest) (*UploadDocumentResult, error) {
	matter, err := s.resolveMatter(ctx, req.Principal, req.CustomerID, req.MatterID)
	if err != nil {
		return nil, err
	}

	documentID := uuid.New()
	storagePath, err := s.storage.Upload(ctx, documentID, req.FileName, req.Data)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:          documentID,
		MatterID:    matter.ID,
		FileName:    req.FileName,
		MimeType:    req.MimeType,
		SizeBytes:   req.SizeBytes,
		StoragePath: storagePath,
		UploadedBy:  req.Principal.ID,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to clean up stored object after insert failure",
				zap.String("storagePath", storagePath), zap.Error(delErr))
		}
		return nil, err
	}

	return &UploadDocumentResult{Document: doc}, nil
}

// ListDocumentsRequest represents a request to list a matter's documents.
type ListDocumentsRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	MatterID   uuid.UUID
}

// ListDocumentsResult represents the result of listing documents.
type ListDocumentsResult struct {
	Documents []*models.Document
}

// ListDocuments returns metadata for every document on the matter.
func (s *DocumentService) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*ListDocumentsResult, error) {
	matter, err := s.resolveMatter(ctx, req.Principal, req.CustomerID, req.MatterID)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByMatter(ctx, matter.ID)
	if err != nil {
		return nil, err
	}

	return &ListDocumentsResult{Documents: docs}, nil
}

// GetDocumentRequest represents a request to download a document.
type GetDocumentRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	MatterID   uuid.UUID
	DocumentID uuid.UUID
}

// GetDocumentResult carries the document metadata and an open reader for
// its bytes. The caller owns closing the reader.
type GetDocumentResult struct {
	Document *models.Document
	Data     io.ReadCloser
}

// GetDocument resolves a document and opens its content for streaming.
func (s *DocumentService) GetDocument(ctx context.Context, req GetDocumentRequest) (*GetDocumentResult, error) {
	matter, err := s.resolveMatter(ctx, req.Principal, req.CustomerID, req.MatterID)
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.GetByID(ctx, matter.ID, req.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	reader, err := s.storage.Download(ctx, doc.StoragePath)
	if err != nil {
		return nil, err
	}

	return &GetDocumentResult{Document: doc, Data: reader}, nil
}

// DeleteDocumentRequest represents a request to delete a document.
type DeleteDocumentRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	MatterID   uuid.UUID
	DocumentID uuid.UUID
}

// DeleteDocument removes the metadata row and the stored object. A
// storage failure after the row is gone is logged, not surfaced; the
// document is already unreachable.
func (s *DocumentService) DeleteDocument(ctx context.Context, req DeleteDocumentRequest) error {
	matter, err := s.resolveMatter(ctx, req.Principal, req.CustomerID, req.MatterID)
	if err != nil {
		return err
	}

	doc, err := s.documentRepo.GetByID(ctx, matter.ID, req.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	deleted, err := s.documentRepo.Delete(ctx, doc.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}

	if err := s.storage.Delete(ctx, doc.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored object",
			zap.String("storagePath", doc.StoragePath), zap.Error(err))
	}

	return nil
}
