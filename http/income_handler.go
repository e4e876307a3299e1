package http

import (
	"encoding/json"
	"net/http"

	"retirement-planner/domain"
	"retirement-planner/service"
)

type IncomeHandler struct {
	service *service.ProjectionService
}

func NewIncomeHandler(service *service.ProjectionService) *IncomeHandler {
	return &IncomeHandler{service: service}
}

// ProjectIncome handles POST /retirement/income: how long a lump sum lasts
// against the target income, or what it sustains over the full horizon.
func (h *IncomeHandler) ProjectIncome(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.IncomeProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ProjectIncome(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
