package upload

import (
	"errors"
	"net/http"

	"invoicebox/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler handles the anonymous, token-gated upload endpoints. No session
// is involved; the upload token in the form is the only credential.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes under the public group.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	up := v1.Group("/upload")
	{
		up.GET("/:token", h.ResolveToken)
		up.POST("", h.Submit)
	}
}

// Submit godoc
// @Summary Submit an invoice document for a vendor
// @Description Anonymous multipart upload authorized by the vendor's upload token.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF, PNG or JPEG, max 10 MiB"
// @Param vendorId formData string true "Vendor ID"
// @Param organizationId formData string true "Organization ID"
// @Param token formData string true "Upload token"
// @Param amount formData string false "Amount, integer"
// @Param invoiceDate formData string false "YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,500 {object} map[string]interface{}
// @Router /upload [post]
func (h *Handler) Submit(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "missing required fields")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "upload failed")
		return
	}
	defer file.Close()

	in := SubmitInput{
		VendorID:       c.PostForm("vendorId"),
		OrganizationID: c.PostForm("organizationId"),
		Token:          c.PostForm("token"),
		Amount:         c.PostForm("amount"),
		InvoiceDate:    c.PostForm("invoiceDate"),
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		FileSize:       fileHeader.Size,
		File:           file,
	}

	if err := h.service.Submit(c.Request.Context(), in); err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "missing required fields")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "file too large")
		case errors.Is(err, ErrUnsupportedType):
			response.Error(c, http.StatusBadRequest, "UNSUPPORTED_TYPE", "unsupported type")
		case errors.Is(err, ErrInvalidUploadLink):
			response.Error(c, http.StatusForbidden, "INVALID_UPLOAD_LINK", "invalid upload link")
		case errors.Is(err, ErrRegistrationFailed):
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "registration failed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResolveToken godoc
// @Summary Resolve an upload token for the upload form
// @Tags Upload
// @Produce json
// @Param token path string true "Upload token"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /upload/{token} [get]
func (h *Handler) ResolveToken(c *gin.Context) {
	info, err := h.service.ResolveToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, ErrInvalidUploadLink) {
			response.Error(c, http.StatusNotFound, "INVALID_UPLOAD_LINK", "invalid upload link")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TOKEN_LOOKUP_FAILED", "Failed to resolve upload link")
		return
	}

	response.Success(c, http.StatusOK, info)
}
