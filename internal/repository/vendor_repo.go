package repository

import (
	"context"
	"time"

	"invoicebox/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// VendorWithCount is a vendor plus how many invoices it has received.
type VendorWithCount struct {
	Vendor       domain.Vendor
	InvoiceCount int64
}

type vendorRow struct {
	ID             string    `gorm:"column:id"`
	OrganizationID string    `gorm:"column:organization_id"`
	Name           string    `gorm:"column:name"`
	UploadToken    string    `gorm:"column:upload_token"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	InvoiceCount   int64     `gorm:"column:invoice_count"`
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

// GetByIDAndToken is the token check for anonymous uploads: both the vendor
// ID and the bearer token must match. Runs unscoped by organization; the
// token stands in for a session.
func (r *VendorRepository) GetByIDAndToken(ctx context.Context, id, token string) (*domain.Vendor, error) {
	var v domain.Vendor
	err := r.db.WithContext(ctx).
		Where("id = ? AND upload_token = ?", id, token).
		First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// GetByToken resolves a vendor from its upload token alone, for rendering
// the anonymous upload form. Also unscoped by organization.
func (r *VendorRepository) GetByToken(ctx context.Context, token string) (*domain.Vendor, error) {
	var v domain.Vendor
	err := r.db.WithContext(ctx).Where("upload_token = ?", token).First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *VendorRepository) ListByOrganization(ctx context.Context, orgID string) ([]VendorWithCount, error) {
	var rows []vendorRow
	err := r.db.WithContext(ctx).Model(&domain.Vendor{}).
		Select("vendors.*, count(invoices.id) AS invoice_count").
		Joins("LEFT JOIN invoices ON invoices.vendor_id = vendors.id").
		Where("vendors.organization_id = ?", orgID).
		Group("vendors.id").
		Order("vendors.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]VendorWithCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, VendorWithCount{
			Vendor: domain.Vendor{
				ID:             row.ID,
				OrganizationID: row.OrganizationID,
				Name:           row.Name,
				UploadToken:    row.UploadToken,
				CreatedAt:      row.CreatedAt,
			},
			InvoiceCount: row.InvoiceCount,
		})
	}
	return out, nil
}

// DeleteByIDAndOrganization removes a vendor only when it belongs to the
// caller's organization. Invoices cascade at the store level.
func (r *VendorRepository) DeleteByIDAndOrganization(ctx context.Context, id, orgID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&domain.Vendor{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
