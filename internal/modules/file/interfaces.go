package file

import (
	"context"
	"time"

	"invoicebox/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// SignedURLIssuer is the slice of the object store this gateway needs.
type SignedURLIssuer interface {
	SignedURL(objPath string, ttl time.Duration) (string, error)
}
