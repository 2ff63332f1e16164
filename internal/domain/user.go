package domain

import "time"

// User is an authenticated account. Authorization is not carried here;
// the user's Profile links it to exactly one organization.
type User struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Profile links a user to its organization. Created at signup together
// with the organization; its ID equals the user's ID.
type Profile struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string    `gorm:"column:organization_id;index" json:"organization_id"`
	Email          string    `gorm:"column:email" json:"email"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Profile) TableName() string { return "profiles" }
