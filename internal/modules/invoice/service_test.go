package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicebox/internal/domain"
	"invoicebox/internal/repository"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) ListByOrganization(ctx context.Context, orgID string, f repository.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, orgID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetByIDAndOrganization(ctx context.Context, id, orgID string) (*domain.Invoice, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) UpdateStatus(ctx context.Context, id, orgID string, status domain.InvoiceStatus, paidAt *time.Time) error {
	args := m.Called(ctx, id, orgID, status, paidAt)
	return args.Error(0)
}

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

func newServiceForTest() (*Service, *mockInvoiceRepo, *mockProfileRepo) {
	invoices := new(mockInvoiceRepo)
	profiles := new(mockProfileRepo)
	svc := NewService(invoices, profiles)
	return svc, invoices, profiles
}

func withProfile(profiles *mockProfileRepo) {
	profiles.On("GetByUserID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", OrganizationID: "O1"}, nil)
}

func TestUpdateStatus_PaidSetsPaidAt(t *testing.T) {
	svc, invoices, profiles := newServiceForTest()
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	withProfile(profiles)

	var gotPaidAt *time.Time
	invoices.On("UpdateStatus", mock.Anything, "inv1", "O1", domain.InvoicePaid, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPaidAt, _ = args.Get(4).(*time.Time)
		}).
		Return(nil)
	invoices.On("GetByIDAndOrganization", mock.Anything, "inv1", "O1").
		Return(&domain.Invoice{ID: "inv1", Status: domain.InvoicePaid, PaidAt: &fixed}, nil)

	inv, err := svc.UpdateStatus(context.Background(), "u1", "inv1", "paid")
	require.NoError(t, err)
	require.NotNil(t, gotPaidAt)
	assert.Equal(t, fixed, *gotPaidAt)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
}

func TestUpdateStatus_UnpaidClearsPaidAt(t *testing.T) {
	svc, invoices, profiles := newServiceForTest()
	withProfile(profiles)

	var gotPaidAt *time.Time = &time.Time{}
	invoices.On("UpdateStatus", mock.Anything, "inv1", "O1", domain.InvoiceUnpaid, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPaidAt, _ = args.Get(4).(*time.Time)
		}).
		Return(nil)
	invoices.On("GetByIDAndOrganization", mock.Anything, "inv1", "O1").
		Return(&domain.Invoice{ID: "inv1", Status: domain.InvoiceUnpaid}, nil)

	inv, err := svc.UpdateStatus(context.Background(), "u1", "inv1", "unpaid")
	require.NoError(t, err)
	assert.Nil(t, gotPaidAt)
	assert.Nil(t, inv.PaidAt)
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	svc, invoices, _ := newServiceForTest()

	_, err := svc.UpdateStatus(context.Background(), "u1", "inv1", "overdue")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotFoundInOrg(t *testing.T) {
	svc, invoices, profiles := newServiceForTest()
	withProfile(profiles)

	invoices.On("UpdateStatus", mock.Anything, "other-org-invoice", "O1", domain.InvoicePaid, mock.Anything).
		Return(repository.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), "u1", "other-org-invoice", "paid")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestList_MonthFilterBounds(t *testing.T) {
	svc, invoices, profiles := newServiceForTest()
	withProfile(profiles)

	var gotFilter repository.InvoiceFilter
	invoices.On("ListByOrganization", mock.Anything, "O1", mock.Anything).
		Run(func(args mock.Arguments) {
			gotFilter = args.Get(2).(repository.InvoiceFilter)
		}).
		Return([]domain.Invoice{}, nil)

	_, err := svc.List(context.Background(), "u1", ListFilter{Month: "2026-08", Status: "paid", VendorID: "V1"})
	require.NoError(t, err)

	require.NotNil(t, gotFilter.From)
	require.NotNil(t, gotFilter.To)
	assert.Equal(t, "2026-08-01", gotFilter.From.Format("2006-01-02"))
	assert.Equal(t, "2026-09-01", gotFilter.To.Format("2006-01-02"))
	assert.Equal(t, domain.InvoicePaid, gotFilter.Status)
	assert.Equal(t, "V1", gotFilter.VendorID)
}

func TestList_InvalidFilters(t *testing.T) {
	svc, _, profiles := newServiceForTest()
	withProfile(profiles)

	_, err := svc.List(context.Background(), "u1", ListFilter{Month: "08-2026"})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.List(context.Background(), "u1", ListFilter{Status: "overdue"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_NoProfile(t *testing.T) {
	svc, _, profiles := newServiceForTest()
	profiles.On("GetByUserID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.List(context.Background(), "ghost", ListFilter{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
