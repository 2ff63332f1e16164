package upload

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"invoicebox/internal/database"
	"invoicebox/internal/domain"
	"invoicebox/internal/pkg/storage"
	"invoicebox/internal/repository"
)

type uploadFixture struct {
	router     *gin.Engine
	db         *gorm.DB
	storageDir string
	org        domain.Organization
	vendor     domain.Vendor
}

func setupUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// file-backed sqlite: a pooled :memory: DSN would give each
	// connection its own empty database
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	storageDir := t.TempDir()
	store, err := storage.NewDiskStore(storageDir, "http://test", "test-secret")
	require.NoError(t, err)

	org := domain.Organization{ID: "O1", Name: "Acme"}
	require.NoError(t, db.Create(&org).Error)
	vendor := domain.Vendor{ID: "V1", OrganizationID: "O1", Name: "Northwind", UploadToken: "abc123"}
	require.NoError(t, db.Create(&vendor).Error)

	svc := NewService(
		repository.NewVendorRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewOrganizationRepository(db),
		store,
	)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(v1)

	return &uploadFixture{router: router, db: db, storageDir: storageDir, org: org, vendor: vendor}
}

func multipartUpload(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func (f *uploadFixture) post(body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	f.router.ServeHTTP(w, req)
	return w
}

func TestUploadEndpoint_Success(t *testing.T) {
	f := setupUploadFixture(t)

	pdf := bytes.Repeat([]byte("a"), 2*1024*1024) // 2 MB
	body, ct := multipartUpload(t, map[string]string{
		"vendorId":       "V1",
		"organizationId": "O1",
		"token":          "abc123",
		"amount":         "50000",
	}, "invoice.pdf", "application/pdf", pdf)

	w := f.post(body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"success":true`)

	var inv domain.Invoice
	require.NoError(t, f.db.First(&inv).Error)
	assert.Equal(t, "V1", inv.VendorID)
	assert.Equal(t, "O1", inv.OrganizationID)
	assert.Equal(t, domain.InvoiceUnpaid, inv.Status)
	assert.Equal(t, "invoice.pdf", inv.FileName)
	require.NotNil(t, inv.Amount)
	assert.Equal(t, int64(50000), *inv.Amount)
	assert.True(t, strings.HasPrefix(inv.FilePath, "O1/V1/"), inv.FilePath)
	assert.True(t, strings.HasSuffix(inv.FilePath, ".pdf"), inv.FilePath)

	// the object is on disk where the path says it is
	written, err := os.ReadFile(filepath.Join(f.storageDir, filepath.FromSlash(inv.FilePath)))
	require.NoError(t, err)
	assert.Len(t, written, len(pdf))
}

func TestUploadEndpoint_BadTokenNoWrites(t *testing.T) {
	f := setupUploadFixture(t)

	body, ct := multipartUpload(t, map[string]string{
		"vendorId":       "V1",
		"organizationId": "O1",
		"token":          "not-the-token",
	}, "invoice.pdf", "application/pdf", []byte("data"))

	w := f.post(body, ct)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid upload link")

	var count int64
	f.db.Model(&domain.Invoice{}).Count(&count)
	assert.Zero(t, count)

	entries, err := os.ReadDir(f.storageDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadEndpoint_MissingFile(t *testing.T) {
	f := setupUploadFixture(t)

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("vendorId", "V1"))
	require.NoError(t, w.WriteField("organizationId", "O1"))
	require.NoError(t, w.WriteField("token", "abc123"))
	require.NoError(t, w.Close())

	resp := f.post(buf, w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "missing required fields")
}

func TestUploadEndpoint_UnsupportedType(t *testing.T) {
	f := setupUploadFixture(t)

	body, ct := multipartUpload(t, map[string]string{
		"vendorId":       "V1",
		"organizationId": "O1",
		"token":          "abc123",
	}, "invoice.txt", "text/plain", []byte("hello"))

	w := f.post(body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported type")
}

func TestUploadEndpoint_ResolveToken(t *testing.T) {
	f := setupUploadFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/upload/abc123", nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Northwind")
	assert.Contains(t, w.Body.String(), "O1")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/upload/unknown-token", nil)
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
