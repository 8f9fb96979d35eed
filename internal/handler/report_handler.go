package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Get renders the store's dashboard report as a standalone HTML page.
func (h *ReportHandler) Get(c *gin.Context) {
	data, err := h.svc.GenerateReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := h.svc.RenderHTML(data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
