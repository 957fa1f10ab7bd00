package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the full pricing catalog the quote form is built from:
// product lines, tier tables, subscription types, starter packages and the
// one-time cost defaults.
func (s *Server) GetCatalog(c *gin.Context) {
	catalog, err := s.pricingSvc.Catalog(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": catalog})
}
