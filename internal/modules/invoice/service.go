package invoice

import (
	"context"
	"errors"
	"time"

	"invoicebox/internal/domain"
	"invoicebox/internal/repository"
)

// Service holds org-scoped invoice reads and the status toggle. Invoices
// are created only by the upload gateway and deleted only by vendor
// cascade; nothing here writes anything but the payment status.
type Service struct {
	invoices InvoiceRepository
	profiles ProfileRepository
	now      func() time.Time
}

func NewService(invoices InvoiceRepository, profiles ProfileRepository) *Service {
	return &Service{
		invoices: invoices,
		profiles: profiles,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]domain.Invoice, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	repoFilter := repository.InvoiceFilter{VendorID: f.VendorID}

	switch f.Status {
	case "":
	case string(domain.InvoiceUnpaid), string(domain.InvoicePaid):
		repoFilter.Status = domain.InvoiceStatus(f.Status)
	default:
		return nil, ErrInvalidStatus
	}

	if f.Month != "" {
		from, err := time.Parse("2006-01", f.Month)
		if err != nil {
			return nil, ErrInvalidMonth
		}
		to := from.AddDate(0, 1, 0)
		repoFilter.From = &from
		repoFilter.To = &to
	}

	return s.invoices.ListByOrganization(ctx, profile.OrganizationID, repoFilter)
}

// UpdateStatus toggles the payment status. paid_at is set exactly when the
// new status is paid and cleared when it is unpaid. Concurrent toggles are
// last-write-wins.
func (s *Service) UpdateStatus(ctx context.Context, userID, invoiceID, status string) (*domain.Invoice, error) {
	if status != string(domain.InvoiceUnpaid) && status != string(domain.InvoicePaid) {
		return nil, ErrInvalidStatus
	}

	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if status == string(domain.InvoicePaid) {
		now := s.now()
		paidAt = &now
	}

	err = s.invoices.UpdateStatus(ctx, invoiceID, profile.OrganizationID, domain.InvoiceStatus(status), paidAt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	return s.invoices.GetByIDAndOrganization(ctx, invoiceID, profile.OrganizationID)
}

func (s *Service) resolveProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
