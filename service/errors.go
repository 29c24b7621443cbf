package service

import "errors"

// Sentinel errors for business-rule failures; handlers map them to HTTP
// status codes. Anything else that escapes a service is an infrastructure
// failure and surfaces as a 500.
var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrForbidden          = errors.New("not authorized to access this customer")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrMatterNotFound     = errors.New("matter not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrConflict           = errors.New("resource was modified concurrently")
	ErrInvalidPhone       = errors.New("phone number must be 10 digits")
	ErrInvalidStatus      = errors.New("status must be Open, Closed, or OnHold")
)
