package upload

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"invoicebox/internal/domain"
	"invoicebox/internal/pkg/storage"
	"invoicebox/internal/repository"

	"github.com/google/uuid"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// allowedContentTypes lists what vendors may submit. The declared multipart
// content type is checked, so rejection happens before any file I/O.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// Service is the upload gateway: it turns a token-gated anonymous request
// into one object write and one invoice row. Each I/O call is attempted
// exactly once; the only recovery is a best-effort object delete when the
// metadata insert fails after a successful write.
type Service struct {
	vendors  VendorRepository
	invoices InvoiceRepository
	orgs     OrganizationRepository
	store    storage.Store
	now      func() time.Time
}

func NewService(vendors VendorRepository, invoices InvoiceRepository, orgs OrganizationRepository, store storage.Store) *Service {
	return &Service{
		vendors:  vendors,
		invoices: invoices,
		orgs:     orgs,
		store:    store,
		now:      time.Now,
	}
}

// Submit validates and ingests one invoice document. Checks run in a fixed
// order and each failure is terminal for the call.
func (s *Service) Submit(ctx context.Context, in SubmitInput) error {
	if in.File == nil || in.VendorID == "" || in.OrganizationID == "" || in.Token == "" {
		return ErrMissingFields
	}

	// the org id becomes the first segment of the object path and must
	// stay a single segment
	if strings.ContainsAny(in.OrganizationID, `/\`) || in.OrganizationID == "." || in.OrganizationID == ".." {
		return ErrMissingFields
	}

	if in.FileSize > MaxFileSize {
		return ErrFileTooLarge
	}

	contentType := strings.TrimSpace(strings.Split(in.ContentType, ";")[0])
	if !allowedContentTypes[contentType] {
		return ErrUnsupportedType
	}

	// The token is the sole authentication for anonymous uploaders. It is
	// checked against the vendor ID only; the organization ID is trusted
	// from the request and used just to build the storage path.
	vendor, err := s.vendors.GetByIDAndToken(ctx, in.VendorID, in.Token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidUploadLink
		}
		return err
	}

	ext := filepath.Ext(in.FileName)
	if ext == "" {
		ext = extForContentType(contentType)
	}
	objPath := fmt.Sprintf("%s/%s/%d%s", in.OrganizationID, vendor.ID, s.now().UnixMilli(), ext)

	// upsert=false: a same-millisecond collision must fail, not overwrite
	if err := s.store.Upload(ctx, objPath, in.File, contentType, false); err != nil {
		log.Printf("storage_upload_failed path=%s error=%v", objPath, err)
		return ErrUploadFailed
	}

	inv := &domain.Invoice{
		ID:             uuid.NewString(),
		VendorID:       vendor.ID,
		OrganizationID: in.OrganizationID,
		FilePath:       objPath,
		FileName:       in.FileName,
		Amount:         parseAmount(in.Amount),
		InvoiceDate:    parseInvoiceDate(in.InvoiceDate),
		Status:         domain.InvoiceUnpaid,
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		log.Printf("invoice_insert_failed path=%s error=%v", objPath, err)
		// compensating delete; its own failure is swallowed
		if rmErr := s.store.Remove(ctx, objPath); rmErr != nil {
			log.Printf("compensating_remove_failed path=%s error=%v", objPath, rmErr)
		}
		return ErrRegistrationFailed
	}

	return nil
}

// ResolveToken resolves an upload token for the anonymous upload form.
func (s *Service) ResolveToken(ctx context.Context, token string) (*UploadPageInfo, error) {
	vendor, err := s.vendors.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidUploadLink
		}
		return nil, err
	}

	org, err := s.orgs.GetByID(ctx, vendor.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &UploadPageInfo{
		VendorID:         vendor.ID,
		VendorName:       vendor.Name,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}, nil
}

// parseAmount parses a base-10 integer; absent or malformed → NULL.
func parseAmount(raw string) *int64 {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseInvoiceDate parses YYYY-MM-DD; absent or malformed → NULL.
func parseInvoiceDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func extForContentType(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".bin"
	}
}
