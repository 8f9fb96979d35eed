package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/service"
)

type StrategyHandler struct {
	svc *service.StrategyService
}

func NewStrategyHandler(svc *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{svc: svc}
}

func (h *StrategyHandler) Create(c *gin.Context) {
	var req dto.CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	strategy, err := h.svc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, strategy)
}

func (h *StrategyHandler) List(c *gin.Context) {
	strategies, err := h.svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if strategies == nil {
		strategies = []model.Strategy{}
	}

	c.JSON(http.StatusOK, strategies)
}

func (h *StrategyHandler) Update(c *gin.Context) {
	var req dto.UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	strategy, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.Param("strategyId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, strategy)
}

func (h *StrategyHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.Param("strategyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "strategy not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "strategy deleted"})
}
