package ports

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error)
	GetReportByID(ctx context.Context, reportID uuid.UUID) (*domain.TheftReport, error)
	ListReports(ctx context.Context) ([]*domain.TheftReport, error)

	// DeleteReport exists for the confirm commit's compensation path
	// only; submitted reports are otherwise never removed.
	DeleteReport(ctx context.Context, reportID uuid.UUID) error
}

type WorkflowRepository interface {
	CreateWorkflow(ctx context.Context, wf *domain.ReportWorkflow) (*domain.ReportWorkflow, error)
	GetWorkflowByID(ctx context.Context, workflowID uuid.UUID) (*domain.ReportWorkflow, error)
	UpdateWorkflow(ctx context.Context, wf *domain.ReportWorkflow) (*domain.ReportWorkflow, error)
}

type OwnerRepository interface {
	GetOwner(ctx context.Context) (*domain.OwnerProfile, error)
}
