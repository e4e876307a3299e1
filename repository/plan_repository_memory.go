package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"retirement-planner/domain"
)

// PlanRecord is one stored calculation, stamped for later inspection.
type PlanRecord struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Input     domain.PlanInput
	Result    domain.PlanResult
}

// PlanRepositoryMemory is an in-memory append-only implementation of
// PlanRepository.
type PlanRepositoryMemory struct {
	mu      sync.Mutex
	records []PlanRecord
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		records: []PlanRecord{},
	}
}

// Save stores the plan calculation in memory.
func (r *PlanRepositoryMemory) Save(
	input domain.PlanInput,
	result domain.PlanResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, PlanRecord{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Input:     input,
		Result:    result,
	})
	return nil
}

// Count reports how many calculations have been stored.
func (r *PlanRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
