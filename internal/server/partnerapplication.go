package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	partnerappdomain "github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

// CreatePartnerApplication is the one unauthenticated write in the API. It
// backs the public "become a partner" form.
func (s *Server) CreatePartnerApplication(c *gin.Context) {
	var req partnerappdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.partnerAppSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPartnerApplications(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.partnerAppSvc.List(c.Request.Context(), partnerappdomain.ListRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Status:    strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPartnerApplicationByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.partnerAppSvc.GetByID(c.Request.Context(), partnerappdomain.GetRequest{ID: id})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePartnerApplicationStatus(c *gin.Context) {
	var req partnerappdomain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.partnerAppSvc.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
