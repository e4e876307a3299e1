package http

import (
	"encoding/json"
	"net/http"

	"retirement-planner/domain"
	"retirement-planner/service"
)

type SavingsHandler struct {
	service *service.ProjectionService
}

func NewSavingsHandler(service *service.ProjectionService) *SavingsHandler {
	return &SavingsHandler{service: service}
}

// ProjectSavings handles POST /retirement/savings: accumulation only.
func (h *SavingsHandler) ProjectSavings(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SavingsProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ProjectSavings(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
