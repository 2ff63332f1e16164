package repository

import (
	"context"
	"time"

	"invoicebox/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceFilter narrows an org-scoped listing. Zero values mean "no filter".
type InvoiceFilter struct {
	VendorID string
	Status   domain.InvoiceStatus
	From     *time.Time // invoice created_at lower bound, inclusive
	To       *time.Time // upper bound, exclusive
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return translate(r.db.WithContext(ctx).Create(inv).Error)
}

func (r *InvoiceRepository) GetByIDAndOrganization(ctx context.Context, id, orgID string) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&inv).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByOrganization(ctx context.Context, orgID string, f InvoiceFilter) ([]domain.Invoice, error) {
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if f.VendorID != "" {
		q = q.Where("vendor_id = ?", f.VendorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var invoices []domain.Invoice
	err := q.Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

// UpdateStatus sets the payment status and paid timestamp in one write,
// scoped to the organization. Last write wins; there is no optimistic
// concurrency token.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id, orgID string, status domain.InvoiceStatus, paidAt *time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Updates(map[string]interface{}{
			"status":  status,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
