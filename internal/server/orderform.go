package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderformdomain "github.com/smallbiznis/partnerportal/internal/orderform/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

func (s *Server) CreateOrderForm(c *gin.Context) {
	var req orderformdomain.CreateOrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderFormSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrderForms(c *gin.Context) {
	var query pagination.Pagination
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderFormSvc.List(c.Request.Context(), orderformdomain.ListOrderFormRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderFormByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.orderFormSvc.GetByID(c.Request.Context(), orderformdomain.GetOrderFormRequest{ID: id})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
