package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/service"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.svc.Add(c.Request.Context(), c.Param("id"), req.Name, req.Price, req.Cost, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "product not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product removed"})
}
