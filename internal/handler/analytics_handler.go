package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/service"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Get(c *gin.Context) {
	analytics, err := h.svc.GetAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
