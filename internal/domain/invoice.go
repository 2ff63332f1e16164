package domain

import "time"

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
)

// Invoice is the metadata row for one uploaded document. The file itself
// lives in the object store at FilePath, whose first segment is the owning
// organization's ID. OrganizationID is denormalized from the vendor so
// org-scoped listing needs no join.
type Invoice struct {
	ID             string        `gorm:"column:id;primaryKey" json:"id"`
	VendorID       string        `gorm:"column:vendor_id;index" json:"vendor_id"`
	OrganizationID string        `gorm:"column:organization_id;index" json:"organization_id"`
	FilePath       string        `gorm:"column:file_path;uniqueIndex" json:"file_path"`
	FileName       string        `gorm:"column:file_name" json:"file_name"`
	Amount         *int64        `gorm:"column:amount" json:"amount,omitempty"`
	InvoiceDate    *time.Time    `gorm:"column:invoice_date" json:"invoice_date,omitempty"`
	Status         InvoiceStatus `gorm:"column:status;default:unpaid" json:"status"`
	PaidAt         *time.Time    `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt      time.Time     `gorm:"column:created_at" json:"created_at"`

	// Deleting a vendor cascades to its invoices at the store level.
	Vendor *Vendor `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }
