package file

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicebox/internal/domain"
	"invoicebox/internal/repository"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) SignedURL(objPath string, ttl time.Duration) (string, error) {
	args := m.Called(objPath, ttl)
	return args.String(0), args.Error(1)
}

func TestResolve_NoProfile(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").Return(nil, repository.ErrNotFound)

	_, err := svc.Resolve(context.Background(), "u1", "O1/V1/1.pdf")
	assert.ErrorIs(t, err, ErrNoProfile)
	issuer.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
}

func TestResolve_OrgMismatchDeniedRegardlessOfExistence(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)

	// denied before the store is ever consulted, so it does not matter
	// whether O2/V9/1.pdf exists
	_, err := svc.Resolve(context.Background(), "u1", "O2/V9/1.pdf")
	assert.ErrorIs(t, err, ErrAccessDenied)
	issuer.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
}

func TestResolve_EmptyAndOddPathsDenied(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)

	for _, p := range []string{"", "O2", "O2/", "/O1/V1/1.pdf"} {
		_, err := svc.Resolve(context.Background(), "u1", p)
		assert.ErrorIs(t, err, ErrAccessDenied, "path %q", p)
	}
}

func TestResolve_DotSegmentsDenied(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)

	// the first segment matches the caller's org before cleaning but
	// would resolve elsewhere after it
	for _, p := range []string{
		"O1/../O2/V9/1.pdf",
		"O1/V1/../../O2/V9/1.pdf",
		"O1/./V1/1.pdf",
		"O1//V1/1.pdf",
		"O1/V1/..",
	} {
		_, err := svc.Resolve(context.Background(), "u1", p)
		assert.ErrorIs(t, err, ErrAccessDenied, "path %q", p)
	}
	issuer.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
}

func TestResolve_ConfiguredTTLIsUsed(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 5*time.Minute)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)
	issuer.On("SignedURL", "O1/V1/1.pdf", 5*time.Minute).
		Return("http://test/storage/signed/O1/V1/1.pdf?exp=1&sig=x", nil)

	_, err := svc.Resolve(context.Background(), "u1", "O1/V1/1.pdf")
	require.NoError(t, err)
	issuer.AssertExpectations(t)
}

func TestResolve_StoreErrorIsNotFound(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)
	issuer.On("SignedURL", "O1/V1/missing.pdf", SignedURLTTL).
		Return("", errors.New("no such object"))

	_, err := svc.Resolve(context.Background(), "u1", "O1/V1/missing.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestResolve_Success(t *testing.T) {
	profiles := new(mockProfileRepo)
	issuer := new(mockIssuer)
	svc := NewService(profiles, issuer, 0)

	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)
	issuer.On("SignedURL", "O1/V1/1.pdf", 60*time.Second).
		Return("http://test/storage/signed/O1/V1/1.pdf?exp=1&sig=x", nil)

	url, err := svc.Resolve(context.Background(), "u1", "O1/V1/1.pdf")
	require.NoError(t, err)
	assert.Contains(t, url, "O1/V1/1.pdf")
	issuer.AssertExpectations(t)
}
