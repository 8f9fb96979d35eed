package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/service"
	"github.com/bizpulse/storesim/internal/sim"
)

type SimulationHandler struct {
	svc *service.SimulationService
}

func NewSimulationHandler(svc *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

// Simulate runs the behavior engine over the store's customers and
// replaces the stored transaction history with the new run.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	// An empty body means "use the defaults".
	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	days := req.Days
	if days < 1 {
		days = sim.DefaultSimulationDays
	}

	transactions, summary, err := h.svc.Simulate(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SimulationResponse{
		Days:         days,
		Transactions: len(transactions),
		Results:      summary,
	})
}
