package domain

import "time"

// Organization is the root of tenancy. Profiles, vendors and invoices all
// hang off an organization, and every org-scoped query carries its ID.
type Organization struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Organization) TableName() string { return "organizations" }
