package dto

import (
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/sim"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CustomerListResponse struct {
	Customers        []model.Customer            `json:"customers"`
	GroupedByPersona map[string][]model.Customer `json:"grouped_by_persona"`
	Pagination       Pagination                  `json:"pagination"`
}

type GenerateCustomersResponse struct {
	Generated int              `json:"generated"`
	Customers []model.Customer `json:"customers"`
}

type SimulationResponse struct {
	Days         int         `json:"days"`
	Transactions int         `json:"transactions"`
	Results      sim.Summary `json:"results"`
}
