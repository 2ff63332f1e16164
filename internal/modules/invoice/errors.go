package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidMonth    = errors.New("invalid month filter")
)
