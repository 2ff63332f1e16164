package upload

import (
	"context"

	"invoicebox/internal/domain"
)

// VendorRepository lookups here run unscoped by organization: the upload
// token is the credential, so no caller org exists yet. They are the only
// two anonymous-facing reads in the system.
type VendorRepository interface {
	GetByIDAndToken(ctx context.Context, id, token string) (*domain.Vendor, error)
	GetByToken(ctx context.Context, token string) (*domain.Vendor, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
}
