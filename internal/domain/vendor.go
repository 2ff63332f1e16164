package domain

import "time"

// Vendor is a supplier invited to submit invoices. The upload token is an
// opaque bearer credential: anyone holding it may upload for this vendor
// without an account. It is compared by equality and never rotated.
type Vendor struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string    `gorm:"column:organization_id;index" json:"organization_id"`
	Name           string    `gorm:"column:name" json:"name"`
	UploadToken    string    `gorm:"column:upload_token;uniqueIndex" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Vendor) TableName() string { return "vendors" }
