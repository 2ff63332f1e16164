package storage

import (
	"crypto/hmac"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"invoicebox/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the signed-URL redemption endpoint. The URL itself
// is the credential: a valid signature inside its expiry window serves the
// object with no further authorization checks.
func (s *DiskStore) RegisterRoutes(r *gin.Engine) {
	r.GET("/storage/signed/*path", s.serveSigned)
}

func (s *DiskStore) serveSigned(c *gin.Context) {
	rel, err := cleanPath(strings.TrimPrefix(c.Param("path"), "/"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	}

	exp, err := strconv.ParseInt(c.Query("exp"), 10, 64)
	sig := c.Query("sig")
	if err != nil || sig == "" || !hmac.Equal([]byte(s.sign(rel, exp)), []byte(sig)) {
		response.Error(c, http.StatusForbidden, "INVALID_SIGNATURE", "invalid signature")
		return
	}

	if time.Now().Unix() > exp {
		response.Error(c, http.StatusForbidden, "LINK_EXPIRED", "link expired")
		return
	}

	abs := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if _, err := os.Stat(abs); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	}

	c.File(abs)
}
