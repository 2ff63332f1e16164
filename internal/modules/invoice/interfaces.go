package invoice

import (
	"context"
	"time"

	"invoicebox/internal/domain"
	"invoicebox/internal/repository"
)

type InvoiceRepository interface {
	ListByOrganization(ctx context.Context, orgID string, f repository.InvoiceFilter) ([]domain.Invoice, error)
	GetByIDAndOrganization(ctx context.Context, id, orgID string) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id, orgID string, status domain.InvoiceStatus, paidAt *time.Time) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
