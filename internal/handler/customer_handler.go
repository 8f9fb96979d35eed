package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/service"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Generate replaces the store's customer base with a fresh batch of
// persona-driven profiles.
func (h *CustomerHandler) Generate(c *gin.Context) {
	// An empty body falls back to the default batch size.
	var req dto.GenerateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	customers, err := h.svc.Generate(c.Request.Context(), c.Param("id"), req.Count)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateCustomersResponse{
		Generated: len(customers),
		Customers: customers,
	})
}

func (h *CustomerHandler) List(c *gin.Context) {
	params := dto.ParsePagination(c)

	customers, total, err := h.svc.List(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}

	c.JSON(http.StatusOK, dto.CustomerListResponse{
		Customers:        customers,
		GroupedByPersona: service.GroupByPersona(customers),
		Pagination:       dto.NewPagination(params.Page, params.PageSize, total),
	})
}

func (h *CustomerHandler) Analytics(c *gin.Context) {
	analytics, err := h.svc.Analytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
