package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/service"
)

type StoreHandler struct {
	svc *service.StoreService
}

func NewStoreHandler(svc *service.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	store, err := h.svc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "store not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "store and all related data removed"})
}
