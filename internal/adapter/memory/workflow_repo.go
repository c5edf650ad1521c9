package memory

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

type WorkflowRepository struct {
	store *Store
}

func NewWorkflowRepository(store *Store) *WorkflowRepository {
	return &WorkflowRepository{store: store}
}

func (r *WorkflowRepository) CreateWorkflow(ctx context.Context, wf *domain.ReportWorkflow) (*domain.ReportWorkflow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneWorkflow(wf)
	r.store.workflows[stored.WorkflowID] = stored
	return cloneWorkflow(stored), nil
}

func (r *WorkflowRepository) GetWorkflowByID(ctx context.Context, workflowID uuid.UUID) (*domain.ReportWorkflow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wf, ok := r.store.workflows[workflowID]
	if !ok {
		return nil, domain.ErrWorkflowNotFound
	}
	return cloneWorkflow(wf), nil
}

func (r *WorkflowRepository) UpdateWorkflow(ctx context.Context, wf *domain.ReportWorkflow) (*domain.ReportWorkflow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.workflows[wf.WorkflowID]; !ok {
		return nil, domain.ErrWorkflowNotFound
	}
	stored := cloneWorkflow(wf)
	r.store.workflows[stored.WorkflowID] = stored
	return cloneWorkflow(stored), nil
}
