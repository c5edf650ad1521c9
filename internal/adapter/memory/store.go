package memory

import (
	"sync"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

// Store is the process-lifetime registry backing all repositories. A
// single mutex guards every keyed map; insertion order is preserved so
// listings stay stable across calls.
type Store struct {
	mu sync.RWMutex

	bikes     map[uuid.UUID]*domain.Bike
	bikeOrder []uuid.UUID

	reports     map[uuid.UUID]*domain.TheftReport
	reportOrder []uuid.UUID

	workflows map[uuid.UUID]*domain.ReportWorkflow

	changes []domain.StatusChange

	owner *domain.OwnerProfile
}

func NewStore() *Store {
	return &Store{
		bikes:     make(map[uuid.UUID]*domain.Bike),
		reports:   make(map[uuid.UUID]*domain.TheftReport),
		workflows: make(map[uuid.UUID]*domain.ReportWorkflow),
	}
}

// cloneBike returns a copy detached from the store so callers cannot
// mutate registry state through returned pointers.
func cloneBike(b *domain.Bike) *domain.Bike {
	c := *b
	c.Documents = make([]*domain.BikeDocument, len(b.Documents))
	for i, d := range b.Documents {
		dc := *d
		c.Documents[i] = &dc
	}
	c.Accessories = make([]*domain.Accessory, len(b.Accessories))
	for i, a := range b.Accessories {
		ac := *a
		c.Accessories[i] = &ac
	}
	return &c
}

func cloneReport(r *domain.TheftReport) *domain.TheftReport {
	c := *r
	return &c
}

func cloneWorkflow(w *domain.ReportWorkflow) *domain.ReportWorkflow {
	c := *w
	return &c
}
