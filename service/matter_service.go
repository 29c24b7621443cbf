package service

import (
	"context"
	"errors"
	"time"

	"lawmatters-backend/models"

	"github.com/google/uuid"
)

// MatterRepo is the minimal matter repository needed by the matter and
// document services.
type MatterRepo interface {
	Create(ctx context.Context, matter *models.Matter) error
	GetByID(ctx context.Context, customerID, matterID uuid.UUID) (*models.Matter, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Matter, error)
	Update(ctx context.Context, matter *models.Matter) (bool, error)
	Exists(ctx context.Context, matterID uuid.UUID) (bool, error)
}

// MatterService handles business logic for matters. Every operation is
// scoped under a customer and gated by the admin-or-owner policy applied
// to that customer.
type MatterService struct {
	matterRepo   MatterRepo
	customerRepo CustomerRepo
}

// MatterServiceOption is a functional option for MatterService.
type MatterServiceOption func(*MatterService)

// WithMatterRepository sets the matter repository.
func WithMatterRepository(repo MatterRepo) MatterServiceOption {
	return func(s *MatterService) {
		s.matterRepo = repo
	}
}

// WithMatterCustomerRepository sets the customer repository used for
// ownership checks.
func WithMatterCustomerRepository(repo CustomerRepo) MatterServiceOption {
	return func(s *MatterService) {
		s.customerRepo = repo
	}
}

// NewMatterService creates a new matter service.
func NewMatterService(opts ...MatterServiceOption) *MatterService {
	s := &MatterService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MatterService) repos() error {
	if s.matterRepo == nil {
		return errors.New("matter repository not set")
	}
	if s.customerRepo == nil {
		return errors.New("customer repository not set")
	}
	return nil
}

// ListMattersRequest represents a request to list a customer's matters.
type ListMattersRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
}

// ListMattersResult represents the result of listing matters.
type ListMattersResult struct {
	Matters []*models.Matter
}

// ListMatters returns all matters for the customer.
func (s *MatterService) ListMatters(ctx context.Context, req ListMattersRequest) (*ListMattersResult, error) {
	if err := s.repos(); err != nil {
		return nil, err
	}

	if _, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID); err != nil {
		return nil, err
	}

	matters, err := s.matterRepo.ListByCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	return &ListMattersResult{Matters: matters}, nil
}

// CreateMatterRequest represents a request to create a matter.
type CreateMatterRequest struct {
	Principal   *models.User
	CustomerID  uuid.UUID
	Title       string
	Description *string
	OpenDate    *time.Time
	Status      *models.MatterStatus
}

// CreateMatterResult represents the result of creating a matter.
type CreateMatterResult struct {
	Matter *models.Matter
}

// CreateMatter creates a matter under the customer. Status defaults to
// Open and OpenDate to the current time. A matter created directly in
// Closed gets its CloseDate stamped so the invariant holds from birth.
func (s *MatterService) CreateMatter(ctx context.Context, req CreateMatterRequest) (*CreateMatterResult, error) {
	if err := s.repos(); err != nil {
		return nil, err
	}

	if _, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	status := models.MatterOpen
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		status = *req.Status
	}

	openDate := now
	if req.OpenDate != nil {
		openDate = req.OpenDate.UTC()
	}

	matter := &models.Matter{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    openDate,
		Status:      status,
	}
	if status == models.MatterClosed {
		matter.CloseDate = &now
	}

	if err := s.matterRepo.Create(ctx, matter); err != nil {
		return nil, err
	}

	return &CreateMatterResult{Matter: matter}, nil
}

// GetMatterRequest represents a request to get a matter.
type GetMatterRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	MatterID   uuid.UUID
}

// GetMatterResult represents the result of getting a matter.
type GetMatterResult struct {
	Matter       *models.Matter
	CustomerName string
}

// GetMatter retrieves a matter. A matter that exists under a different
// customer is not found, not forbidden.
func (s *MatterService) GetMatter(ctx context.Context, req GetMatterRequest) (*GetMatterResult, error) {
	if err := s.repos(); err != nil {
		return nil, err
	}

	customer, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID)
	if err != nil {
		return nil, err
	}

	matter, err := s.matterRepo.GetByID(ctx, req.CustomerID, req.MatterID)
	if err != nil {
		return nil, err
	}
	if matter == nil {
		return nil, ErrMatterNotFound
	}

	return &GetMatterResult{Matter: matter, CustomerName: customer.Name}, nil
}

// UpdateMatterRequest represents a request to update a matter.
type UpdateMatterRequest struct {
	Principal   *models.User
	CustomerID  uuid.UUID
	MatterID    uuid.UUID
	Title       string
	Description *string
	OpenDate    *time.Time
	Status      models.MatterStatus
}

// UpdateMatterResult represents the result of updating a matter.
type UpdateMatterResult struct {
	Matter *models.Matter
}

// UpdateMatter rewrites a matter's mutable fields. Transitioning into
// Closed stamps CloseDate if it is not already set; transitioning out of
// Closed clears it. A racing writer is reported as a conflict, unless the
// row no longer exists at all, which is not-found.
func (s *MatterService) UpdateMatter(ctx context.Context, req UpdateMatterRequest) (*UpdateMatterResult, error) {
	if err := s.repos(); err != nil {
		return nil, err
	}

	if _, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID); err != nil {
		return nil, err
	}

	matter, err := s.matterRepo.GetByID(ctx, req.CustomerID, req.MatterID)
	if err != nil {
		return nil, err
	}
	if matter == nil {
		return nil, ErrMatterNotFound
	}

	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	matter.Title = req.Title
	matter.Description = req.Description
	matter.Status = req.Status
	if req.OpenDate != nil {
		matter.OpenDate = req.OpenDate.UTC()
	}

	if matter.Status == models.MatterClosed {
		if matter.CloseDate == nil {
			now := time.Now().UTC()
			matter.CloseDate = &now
		}
	} else {
		matter.CloseDate = nil
	}

	updated, err := s.matterRepo.Update(ctx, matter)
	if err != nil {
		return nil, err
	}
	if !updated {
		exists, err := s.matterRepo.Exists(ctx, req.MatterID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrMatterNotFound
		}
		return nil, ErrConflict
	}

	return &UpdateMatterResult{Matter: matter}, nil
}
