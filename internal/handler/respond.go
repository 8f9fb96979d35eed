package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/service"
	"github.com/bizpulse/storesim/internal/sim"
)

// respondError maps service and engine errors onto HTTP statuses. Store
// lookups surface pgx.ErrNoRows, which is the caller's 404.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "store not found"})
	case errors.Is(err, sim.ErrNoActiveCustomers):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no customers found, generate customers first"})
	case errors.Is(err, sim.ErrNoProducts):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no products found, add products first"})
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		// Let the error middleware translate database errors.
		_ = c.Error(err)
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed: " + err.Error()})
}
