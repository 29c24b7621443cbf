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

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, logger: logger}
}

// CustomerResponse is the wire shape of a customer. Phone is formatted
// for display; storage keeps the raw digits.
type CustomerResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	LawyerID         uuid.UUID `json:"lawyerId"`
	OpenMattersCount int       `json:"openMattersCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            service.FormatPhone(c.Phone),
		LawyerID:         c.LawyerID,
		OpenMattersCount: c.OpenMattersCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// List handles GET /api/customers. Admins see every customer; lawyers
// see only their own.
func (h *CustomerHandler) List(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	result, err := h.customerService.ListCustomers(c.Request.Context(), service.ListCustomersRequest{
		Principal: principal,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	responses := make([]CustomerResponse, 0, len(result.Customers))
	for _, customer := range result.Customers {
		responses = append(responses, toCustomerResponse(customer))
	}

	c.JSON(http.StatusOK, responses)
}

// CustomerRequest represents the request body for creating or updating a
// customer.
type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Create handles POST /api/customers. The caller becomes the owning
// lawyer regardless of role.
func (h *CustomerHandler) Create(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.customerService.CreateCustomer(c.Request.Context(), service.CreateCustomerRequest{
		Principal: principal,
		Name:      req.Name,
		Phone:     req.Phone,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(result.Customer))
}

// Get handles GET /api/customers/:customerId.
func (h *CustomerHandler) Get(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	result, err := h.customerService.GetCustomer(c.Request.Context(), service.GetCustomerRequest{
		Principal:  principal,
		CustomerID: customerID,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(result.Customer))
}

// Update handles PUT /api/customers/:customerId.
func (h *CustomerHandler) Update(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.customerService.UpdateCustomer(c.Request.Context(), service.UpdateCustomerRequest{
		Principal:  principal,
		CustomerID: customerID,
		Name:       req.Name,
		Phone:      req.Phone,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(result.Customer))
}

// Delete handles DELETE /api/customers/:customerId. Matters and their
// documents cascade with the customer.
func (h *CustomerHandler) Delete(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), service.DeleteCustomerRequest{
		Principal:  principal,
		CustomerID: customerID,
	}); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
