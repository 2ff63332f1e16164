package auth

import (
	"context"
	"errors"
	"log"

	"invoicebox/internal/domain"
	"invoicebox/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID string) (string, error)
}

// Service contains the business logic for signup and login. Signup
// bootstraps the whole tenancy: user, organization and the profile that
// ties them together.
type Service struct {
	users    UserRepository
	orgs     OrganizationRepository
	profiles ProfileRepository
	jwt      jwtService
}

func NewService(users UserRepository, orgs OrganizationRepository, profiles ProfileRepository, jwt jwtService) *Service {
	return &Service{
		users:    users,
		orgs:     orgs,
		profiles: profiles,
		jwt:      jwt,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, *domain.Organization, string, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, "", err
	}
	if exists {
		return nil, nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, "", ErrEmailAlreadyExists
		}
		return nil, nil, "", err
	}

	org := &domain.Organization{
		ID:   uuid.NewString(),
		Name: req.OrganizationName,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, nil, "", err
	}

	profile := &domain.Profile{
		ID:             user.ID,
		OrganizationID: org.ID,
		Email:          user.Email,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		// best-effort cleanup so a retry does not leave an orphan org behind
		if delErr := s.orgs.Delete(ctx, org.ID); delErr != nil {
			log.Printf("signup_cleanup_failed org_id=%s error=%v", org.ID, delErr)
		}
		return nil, nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, nil, "", err
	}

	return user, org, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Me resolves the caller's profile and organization.
func (s *Service) Me(ctx context.Context, userID string) (*domain.Profile, *domain.Organization, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	org, err := s.orgs.GetByID(ctx, profile.OrganizationID)
	if err != nil {
		return nil, nil, err
	}

	return profile, org, nil
}
