package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	learningdomain "github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

// ListLearningMaterials is the partner-facing listing. Drafts never appear.
func (s *Server) ListLearningMaterials(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.learningSvc.List(c.Request.Context(), learningdomain.ListRequest{
		PageToken:     query.PageToken,
		PageSize:      int32(query.PageSize),
		Category:      strings.TrimSpace(query.Category),
		PublishedOnly: true,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAllLearningMaterials(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.learningSvc.List(c.Request.Context(), learningdomain.ListRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Category:  strings.TrimSpace(query.Category),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateLearningMaterial(c *gin.Context) {
	var req learningdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.learningSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateLearningMaterial(c *gin.Context) {
	var req learningdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.learningSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteLearningMaterial(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.learningSvc.Delete(c.Request.Context(), learningdomain.DeleteRequest{ID: id}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
