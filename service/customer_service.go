package service

import (
	"context"
	"errors"

	"lawmatters-backend/models"

	"github.com/google/uuid"
)

// CustomerRepo is the minimal customer repository needed by the customer,
// matter, and document services.
type CustomerRepo interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context, lawyerID *uuid.UUID) ([]*models.Customer, error)
	CountOpenMatters(ctx context.Context, customerID uuid.UUID) (int, error)
	Update(ctx context.Context, customer *models.Customer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CustomerService handles business logic for customers.
type CustomerService struct {
	customerRepo CustomerRepo
}

// CustomerServiceOption is a functional option for CustomerService.
type CustomerServiceOption func(*CustomerService)

// WithCustomerRepository sets the customer repository.
func WithCustomerRepository(repo CustomerRepo) CustomerServiceOption {
	return func(s *CustomerService) {
		s.customerRepo = repo
	}
}

// NewCustomerService creates a new customer service.
func NewCustomerService(opts ...CustomerServiceOption) *CustomerService {
	s := &CustomerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCustomersRequest represents a request to list customers.
type ListCustomersRequest struct {
	Principal *models.User
}

// ListCustomersResult represents the result of listing customers.
type ListCustomersResult struct {
	Customers []*models.Customer
}

// ListCustomers returns every customer for an Admin, and only owned
// customers for a Lawyer. Open-matter counts are computed per request.
func (s *CustomerService) ListCustomers(ctx context.Context, req ListCustomersRequest) (*ListCustomersResult, error) {
	if s.customerRepo == nil {
		return nil, errors.New("customer repository not set")
	}
	if req.Principal == nil {
		return nil, ErrUnauthenticated
	}

	var lawyerID *uuid.UUID
	if !req.Principal.IsAdmin() {
		lawyerID = &req.Principal.ID
	}

	customers, err := s.customerRepo.List(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	return &ListCustomersResult{Customers: customers}, nil
}

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Principal *models.User
	Name      string
	Phone     string
}

// CreateCustomerResult represents the result of creating a customer.
type CreateCustomerResult struct {
	Customer *models.Customer
}

// CreateCustomer creates a customer owned by the principal. The creator is
// always the owning lawyer, Admins included.
func (s *CustomerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error) {
	if s.customerRepo == nil {
		return nil, errors.New("customer repository not set")
	}
	if req.Principal == nil {
		return nil, ErrUnauthenticated
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:     req.Name,
		Phone:    phone,
		LawyerID: req.Principal.ID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return &CreateCustomerResult{Customer: customer}, nil
}

// GetCustomerRequest represents a request to get a customer.
type GetCustomerRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
}

// GetCustomerResult represents the result of getting a customer.
type GetCustomerResult struct {
	Customer *models.Customer
}

// GetCustomer retrieves a customer the principal may access, with its
// open-matter count.
func (s *CustomerService) GetCustomer(ctx context.Context, req GetCustomerRequest) (*GetCustomerResult, error) {
	if s.customerRepo == nil {
		return nil, errors.New("customer repository not set")
	}

	customer, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID)
	if err != nil {
		return nil, err
	}

	count, err := s.customerRepo.CountOpenMatters(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	customer.OpenMattersCount = count

	return &GetCustomerResult{Customer: customer}, nil
}

// UpdateCustomerRequest represents a request to update a customer.
type UpdateCustomerRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
	Name       string
	Phone      string
}

// UpdateCustomerResult represents the result of updating a customer.
type UpdateCustomerResult struct {
	Customer *models.Customer
}

// UpdateCustomer rewrites name and phone. The owning lawyer never changes
// here. A concurrent write on the same row is reported as a conflict
// unless the row is gone, which is not-found.
func (s *CustomerService) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (*UpdateCustomerResult, error) {
	if s.customerRepo == nil {
		return nil, errors.New("customer repository not set")
	}

	customer, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID)
	if err != nil {
		return nil, err
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Phone = phone

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}
	if !updated {
		current, err := s.customerRepo.GetByID(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrCustomerNotFound
		}
		return nil, ErrConflict
	}

	return &UpdateCustomerResult{Customer: customer}, nil
}

// DeleteCustomerRequest represents a request to delete a customer.
type DeleteCustomerRequest struct {
	Principal  *models.User
	CustomerID uuid.UUID
}

// DeleteCustomer removes a customer; its matters and their documents go
// with it.
func (s *CustomerService) DeleteCustomer(ctx context.Context, req DeleteCustomerRequest) error {
	if s.customerRepo == nil {
		return errors.New("customer repository not set")
	}

	if _, err := authorizeCustomer(ctx, s.customerRepo, req.Principal, req.CustomerID); err != nil {
		return err
	}

	deleted, err := s.customerRepo.Delete(ctx, req.CustomerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}

	return nil
}
