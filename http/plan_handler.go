package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"retirement-planner/domain"
	"retirement-planner/service"
)

type PlanHandler struct {
	service *service.ProjectionService
}

func NewPlanHandler(service *service.ProjectionService) *PlanHandler {
	return &PlanHandler{service: service}
}

// BuildPlan handles POST /retirement/plan: the end-to-end projection from
// current savings and contribution settings to retirement income.
func (h *PlanHandler) BuildPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildPlan(input)
	if err != nil {
		log.Printf("Error building plan: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failure never corrupts a 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
