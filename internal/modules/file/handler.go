package file

import (
	"errors"
	"net/http"
	"strings"

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

// RegisterRoutes registers the file redirect route under the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/files/*path", h.Redirect)
}

// Redirect godoc
// @Summary Redirect to a short-lived signed URL for a stored file
// @Description The caller's organization must own the file (first path segment).
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param path path string true "Storage path, {orgID}/{vendorID}/{file}"
// @Success 302
// @Failure 401,403,404,500 {object} map[string]interface{}
// @Router /files/{path} [get]
func (h *Handler) Redirect(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	objPath := strings.TrimPrefix(c.Param("path"), "/")

	url, err := h.service.Resolve(c.Request.Context(), userID, objPath)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			response.Error(c, http.StatusForbidden, "NO_PROFILE", "no profile")
		case errors.Is(err, ErrAccessDenied):
			response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "file not found")
		default:
			response.Error(c, http.StatusInternalServerError, "FILE_ACCESS_FAILED", "Failed to resolve file")
		}
		return
	}

	c.Redirect(http.StatusFound, url)
}
