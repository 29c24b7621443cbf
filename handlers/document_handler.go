package handlers

import (
	"fmt"
	"net/http"

	"lawmatters-backend/middleware"
	"lawmatters-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxDocumentSize caps uploads at 10 MiB.
const maxDocumentSize = 10 << 20

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/png":  true,
	"image/jpeg": true,
}

// DocumentHandler handles HTTP requests for matter document attachments.
type DocumentHandler struct {
	documentService *service.DocumentService
	logger          *zap.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documentService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, logger: logger}
}

// Upload handles POST /api/customers/:customerId/matters/:matterId/documents.
// Expects a multipart form with a "file" field.
func (h *DocumentHandler) Upload(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file provided"})
		return
	}

	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds the 10MB limit"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedDocumentTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("File type %q is not allowed", mimeType)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer file.Close()

	result, err := h.documentService.UploadDocument(c.Request.Context(), service.UploadDocumentRequest{
		Principal:  principal,
		CustomerID: customerID,
		MatterID:   matterID,
		FileName:   fileHeader.Filename,
		MimeType:   mimeType,
		SizeBytes:  fileHeader.Size,
		Data:       file,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result.Document)
}

// List handles GET /api/customers/:customerId/matters/:matterId/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), service.ListDocumentsRequest{
		Principal:  principal,
		CustomerID: customerID,
		MatterID:   matterID,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result.Documents)
}

// Download handles GET .../documents/:documentId. The body streams
// straight from storage.
func (h *DocumentHandler) Download(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}

	result, err := h.documentService.GetDocument(c.Request.Context(), service.GetDocumentRequest{
		Principal:  principal,
		CustomerID: customerID,
		MatterID:   matterID,
		DocumentID: documentID,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer result.Data.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", result.Document.FileName),
	}
	c.DataFromReader(http.StatusOK, result.Document.SizeBytes, result.Document.MimeType, result.Data, headers)
}

// Delete handles DELETE .../documents/:documentId.
func (h *DocumentHandler) Delete(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), service.DeleteDocumentRequest{
		Principal:  principal,
		CustomerID: customerID,
		MatterID:   matterID,
		DocumentID: documentID,
	}); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
