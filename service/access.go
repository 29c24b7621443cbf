package service

import (
	"context"

	"lawmatters-backend/models"

	"github.com/google/uuid"
)

// Decision is the outcome of the ownership access check.
type Decision int

const (
	// DecisionAllow grants access: the principal is an Admin or owns the
	// resource.
	DecisionAllow Decision = iota
	// DecisionForbidden denies an authenticated principal that is neither
	// Admin nor owner.
	DecisionForbidden
	// DecisionUnauthenticated denies because there is no principal at all.
	DecisionUnauthenticated
)

// Decide applies the admin-or-owner policy. It is a pure function:
// resource existence is the caller's concern, checked before deciding, so
// a 404 never gets reported as a 403.
func Decide(principal *models.User, ownerID uuid.UUID) Decision {
	if principal == nil {
		return DecisionUnauthenticated
	}
	if principal.IsAdmin() {
		return DecisionAllow
	}
	if principal.ID == ownerID {
		return DecisionAllow
	}
	return DecisionForbidden
}

// authorizeCustomer resolves a customer and applies Decide against its
// owning lawyer. Matter and document operations call this with the
// customer named by the route; ownership is always derived transitively
// through the parent customer.
func authorizeCustomer(ctx context.Context, repo CustomerRepo, principal *models.User, customerID uuid.UUID) (*models.Customer, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	customer, err := repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	switch Decide(principal, customer.LawyerID) {
	case DecisionAllow:
		return customer, nil
	case DecisionUnauthenticated:
		return nil, ErrUnauthenticated
	default:
		return nil, ErrForbidden
	}
}
