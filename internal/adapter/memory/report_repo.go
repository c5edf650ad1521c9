package memory

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) CreateReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneReport(report)
	r.store.reports[stored.ReportID] = stored
	r.store.reportOrder = append(r.store.reportOrder, stored.ReportID)
	return cloneReport(stored), nil
}

func (r *ReportRepository) GetReportByID(ctx context.Context, reportID uuid.UUID) (*domain.TheftReport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	report, ok := r.store.reports[reportID]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return cloneReport(report), nil
}

func (r *ReportRepository) DeleteReport(ctx context.Context, reportID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reports[reportID]; !ok {
		return domain.ErrReportNotFound
	}
	delete(r.store.reports, reportID)
	for i, id := range r.store.reportOrder {
		if id == reportID {
			r.store.reportOrder = append(r.store.reportOrder[:i], r.store.reportOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ReportRepository) ListReports(ctx context.Context) ([]*domain.TheftReport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reports := make([]*domain.TheftReport, 0, len(r.store.reportOrder))
	for _, id := range r.store.reportOrder {
		if report, ok := r.store.reports[id]; ok {
			reports = append(reports, cloneReport(report))
		}
	}
	return reports, nil
}
