package repository

import (
	"context"

	"invoicebox/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// GetByUserID resolves the profile for an authenticated user. The profile ID
// equals the user ID by construction at signup.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
