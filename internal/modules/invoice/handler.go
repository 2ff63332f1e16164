package invoice

import (
	"errors"
	"net/http"

	"invoicebox/internal/middleware"
	"invoicebox/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers invoice routes under the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.PATCH("/:id/status", h.UpdateStatus)
	}
}

// List godoc
// @Summary List invoices of the caller's organization
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param vendor_id query string false "Filter by vendor"
// @Param status query string false "unpaid or paid"
// @Param month query string false "YYYY-MM, filters by upload month"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,500 {object} map[string]interface{}
// @Router /invoices [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		VendorID: c.Query("vendor_id"),
		Status:   c.Query("status"),
		Month:    c.Query("month"),
	}

	invoices, err := h.service.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			response.Error(c, http.StatusForbidden, "NO_PROFILE", "no profile")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidMonth):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INVOICE_LIST_FAILED", "Failed to list invoices")
		}
		return
	}

	response.Success(c, http.StatusOK, invoices)
}

// UpdateStatus godoc
// @Summary Toggle an invoice between unpaid and paid
// @Description Sets paid_at when marking paid and clears it when marking unpaid.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body UpdateStatusRequest true "new status"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,500 {object} map[string]interface{}
// @Router /invoices/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.UpdateStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			response.Error(c, http.StatusForbidden, "NO_PROFILE", "no profile")
		case errors.Is(err, ErrInvoiceNotFound):
			response.Error(c, http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "STATUS_UPDATE_FAILED", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, inv)
}
