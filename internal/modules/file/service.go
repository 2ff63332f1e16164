package file

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"invoicebox/internal/repository"
)

// SignedURLTTL bounds the exposure window of a minted URL: anyone holding
// it can fetch the object until expiry, with no further checks. Used when
// no TTL is configured.
const SignedURLTTL = 60 * time.Second

// Service is the file access gateway. Authorization is a pure string-prefix
// check: the requested path's first segment must equal the caller's
// organization ID. It trusts that all objects are written under the
// {orgID}/{vendorID}/... convention by the upload gateway.
type Service struct {
	profiles ProfileRepository
	store    SignedURLIssuer
	ttl      time.Duration
}

func NewService(profiles ProfileRepository, store SignedURLIssuer, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = SignedURLTTL
	}
	return &Service{
		profiles: profiles,
		store:    store,
		ttl:      ttl,
	}
}

// Resolve validates the caller against the requested path and mints a fresh
// signed URL. No caching; every call mints a new one.
func (s *Service) Resolve(ctx context.Context, userID, objPath string) (string, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNoProfile
		}
		return "", err
	}

	// the path is authorized as written, so it must already be canonical:
	// a dot segment could re-point the first segment after cleaning
	if objPath == "" || strings.HasPrefix(objPath, "/") || objPath != path.Clean(objPath) {
		return "", ErrAccessDenied
	}

	orgID, _, _ := strings.Cut(objPath, "/")
	if orgID != profile.OrganizationID {
		return "", ErrAccessDenied
	}

	url, err := s.store.SignedURL(objPath, s.ttl)
	if err != nil {
		return "", ErrFileNotFound
	}
	return url, nil
}
