package handlers

import (
	"errors"
	"net/http"

	"lawmatters-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service sentinels onto the HTTP taxonomy.
// 401 (no principal), 403 (not owner or admin), 404 (does not resolve),
// and 409 (concurrent write) are kept strictly distinct; anything
// unrecognized is an infrastructure failure and surfaces as 500.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to access this customer"})
	case errors.Is(err, service.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case errors.Is(err, service.ErrMatterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Matter not found"})
	case errors.Is(err, service.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "The record was modified by someone else; reload and retry"})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
