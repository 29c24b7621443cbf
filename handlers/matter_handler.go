package handlers

import (
	"net/http"
	"time"

	"lawmatters-backend/middleware"
	"lawmatters-backend/models"
	"lawmatters-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatterHandler handles HTTP requests for matters, always scoped under a
// customer.
type MatterHandler struct {
	matterService *service.MatterService
	logger        *zap.Logger
}

// NewMatterHandler creates a new matter handler.
func NewMatterHandler(matterService *service.MatterService, logger *zap.Logger) *MatterHandler {
	return &MatterHandler{matterService: matterService, logger: logger}
}

// MatterResponse is the wire shape of a matter. CustomerName is filled
// on detail reads only.
type MatterResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerID   uuid.UUID           `json:"customerId"`
	CustomerName string              `json:"customerName,omitempty"`
	Title        string              `json:"title"`
	Description  *string             `json:"description,omitempty"`
	OpenDate     time.Time           `json:"openDate"`
	CloseDate    *time.Time          `json:"closeDate,omitempty"`
	Status       models.MatterStatus `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func toMatterResponse(m *models.Matter, customerName string) MatterResponse {
	return MatterResponse{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		CustomerName: customerName,
		Title:        m.Title,
		Description:  m.Description,
		OpenDate:     m.OpenDate,
		CloseDate:    m.CloseDate,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func matterRouteIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return uuid.Nil, uuid.Nil, false
	}
	matterID, err := uuid.Parse(c.Param("matterId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Matter not found"})
		return uuid.Nil, uuid.Nil, false
	}
	return customerID, matterID, true
}

// List handles GET /api/customers/:customerId/matters.
func (h *MatterHandler) List(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	result, err := h.matterService.ListMatters(c.Request.Context(), service.ListMattersRequest{
		Principal:  principal,
		CustomerID: customerID,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	responses := make([]MatterResponse, 0, len(result.Matters))
	for _, matter := range result.Matters {
		responses = append(responses, toMatterResponse(matter, ""))
	}

	c.JSON(http.StatusOK, responses)
}

// CreateMatterRequest represents the request body for creating a matter.
type CreateMatterRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description *string              `json:"description"`
	OpenDate    *time.Time           `json:"openDate"`
	Status      *models.MatterStatus `json:"status"`
}

// Create handles POST /api/customers/:customerId/matters.
func (h *MatterHandler) Create(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var req CreateMatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.matterService.CreateMatter(c.Request.Context(), service.CreateMatterRequest{
		Principal:   principal,
		CustomerID:  customerID,
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    req.OpenDate,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toMatterResponse(result.Matter, ""))
}

// Get handles GET /api/customers/:customerId/matters/:matterId.
func (h *MatterHandler) Get(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}

	result, err := h.matterService.GetMatter(c.Request.Context(), service.GetMatterRequest{
		Principal:  principal,
		CustomerID: customerID,
		MatterID:   matterID,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toMatterResponse(result.Matter, result.CustomerName))
}

// UpdateMatterRequest represents the request body for updating a matter.
type UpdateMatterRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description *string             `json:"description"`
	OpenDate    *time.Time          `json:"openDate"`
	Status      models.MatterStatus `json:"status" binding:"required"`
}

// Update handles PUT /api/customers/:customerId/matters/:matterId.
func (h *MatterHandler) Update(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, matterID, ok := matterRouteIDs(c)
	if !ok {
		return
	}

	var req UpdateMatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.matterService.UpdateMatter(c.Request.Context(), service.UpdateMatterRequest{
		Principal:   principal,
		CustomerID:  customerID,
		MatterID:    matterID,
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    req.OpenDate,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toMatterResponse(result.Matter, ""))
}
