package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/google/uuid"
)

// WorkflowService owns the theft-report state machine:
// COLLECTING -> DRAFTED -> SUBMITTED (terminal).
//
// No uniqueness constraint is enforced on "one active workflow per bike",
// matching the surrounding product behaviour: a confirmed report flips the
// bike to STOLEN, which removes it from the selectable set anyway.
type WorkflowService struct {
	workflowRepo ports.WorkflowRepository
	reportRepo   ports.ReportRepository
	bikeService  *BikeService
	drafts       *DraftService
	renderer     ports.DocumentRenderer
	directory    ports.JurisdictionDirectory
	ownerRepo    ports.OwnerRepository
	logger       ports.LoggerPort

	// mu serializes workflow transitions. The interactive model has a
	// single logical actor; the server adaptation still must not let two
	// requests race the same instance through a transition.
	mu sync.Mutex
}

func NewWorkflowService(
	workflowRepo ports.WorkflowRepository,
	reportRepo ports.ReportRepository,
	bikeService *BikeService,
	drafts *DraftService,
	renderer ports.DocumentRenderer,
	directory ports.JurisdictionDirectory,
	ownerRepo ports.OwnerRepository,
	logger ports.LoggerPort,
) *WorkflowService {
	return &WorkflowService{
		workflowRepo: workflowRepo,
		reportRepo:   reportRepo,
		bikeService:  bikeService,
		drafts:       drafts,
		renderer:     renderer,
		directory:    directory,
		ownerRepo:    ownerRepo,
		logger:       logger,
	}
}

// StartReport opens a workflow instance for the given bike. Only bikes
// currently SAFE or FOR_SALE are accepted.
func (s *WorkflowService) StartReport(ctx context.Context, bikeID string) (*domain.ReportWorkflow, error) {
	bike, err := s.bikeService.GetBikeByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	if !bike.Reportable() {
		s.logger.Warn("Bike not offerable for theft report", map[string]interface{}{
			"bike_id": bikeID,
			"status":  bike.Status,
		})
		return nil, domain.ErrBikeNotReportable
	}

	now := time.Now()
	wf := &domain.ReportWorkflow{
		WorkflowID: uuid.New(),
		BikeID:     bike.BikeID,
		State:      domain.StateCollecting,
		StartedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.workflowRepo.CreateWorkflow(ctx, wf)
	if err != nil {
		s.logger.Error("Failed to create workflow", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Theft report workflow started", map[string]interface{}{
		"workflow_id": created.WorkflowID,
		"bike_id":     created.BikeID,
	})

	return created, nil
}

func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*domain.ReportWorkflow, error) {
	wfUUID, err := uuid.Parse(workflowID)
	if err != nil {
		return nil, fmt.Errorf("invalid workflow ID: %w", err)
	}
	return s.workflowRepo.GetWorkflowByID(ctx, wfUUID)
}

// SubmitFacts is the COLLECTING -> DRAFTED transition. All four inputs
// (bike selection was fixed at start, location, details, region) must be
// non-empty, otherwise the transition is refused with no state change.
// The draft call is synchronous and is the workflow's only suspension
// point; generation failure does not block the transition, the fallback
// text is a valid draft.
func (s *WorkflowService) SubmitFacts(ctx context.Context, workflowID, location, details, region string) (*domain.ReportWorkflow, error) {
	s.mu.Lock()
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if wf.State == domain.StateSubmitted {
		s.mu.Unlock()
		return nil, domain.ErrInvalidTransition
	}
	if wf.Generating {
		s.mu.Unlock()
		return nil, domain.ErrGenerationInFlight
	}

	if strings.TrimSpace(location) == "" ||
		strings.TrimSpace(details) == "" ||
		strings.TrimSpace(region) == "" ||
		wf.BikeID == uuid.Nil {
		s.mu.Unlock()
		s.logger.Warn("Facts incomplete, transition refused", map[string]interface{}{
			"workflow_id": workflowID,
		})
		return nil, domain.ErrValidationIncomplete
	}

	wf.Generating = true
	if _, err := s.workflowRepo.UpdateWorkflow(ctx, wf); err != nil {
		wf.Generating = false
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	bike, err := s.bikeService.GetBikeByID(ctx, wf.BikeID.String())
	if err != nil {
		s.clearBusy(ctx, wf)
		return nil, err
	}

	draft := s.drafts.DraftTheftReport(ctx, bike, details, location)

	s.mu.Lock()
	defer s.mu.Unlock()
	wf.Location = location
	wf.Details = details
	wf.Region = region
	wf.DraftText = draft
	wf.State = domain.StateDrafted
	wf.Generating = false
	wf.UpdatedAt = time.Now()

	updated, err := s.workflowRepo.UpdateWorkflow(ctx, wf)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Draft generated, workflow advanced", map[string]interface{}{
		"workflow_id": wf.WorkflowID,
		"bike_id":     wf.BikeID,
	})

	return updated, nil
}

func (s *WorkflowService) clearBusy(ctx context.Context, wf *domain.ReportWorkflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wf.Generating = false
	if _, err := s.workflowRepo.UpdateWorkflow(ctx, wf); err != nil {
		s.logger.Error("Failed to clear busy flag", map[string]interface{}{
			"error":       err.Error(),
			"workflow_id": wf.WorkflowID,
		})
	}
}

// ReviseFacts returns a drafted workflow to COLLECTING for editing. The
// draft text is discarded; it is regenerable, nothing else is lost.
func (s *WorkflowService) ReviseFacts(ctx context.Context, workflowID string) (*domain.ReportWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if wf.State != domain.StateDrafted {
		return nil, domain.ErrInvalidTransition
	}

	wf.State = domain.StateCollecting
	wf.DraftText = ""
	wf.UpdatedAt = time.Now()
	return s.workflowRepo.UpdateWorkflow(ctx, wf)
}

// RenderDocument produces the downloadable Strafanzeige for a drafted
// workflow. Side-effect free: neither the draft text nor any bike state
// changes, and the call may be repeated.
func (s *WorkflowService) RenderDocument(ctx context.Context, workflowID string) (*ports.RenderedDocument, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if wf.State != domain.StateDrafted {
		return nil, domain.ErrInvalidTransition
	}

	bike, err := s.bikeService.GetBikeByID(ctx, wf.BikeID.String())
	if err != nil {
		return nil, err
	}
	owner, err := s.ownerRepo.GetOwner(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pending := &domain.TheftReport{
		BikeID:         wf.BikeID,
		IncidentDate:   now.Format("2006-01-02"),
		IncidentTime:   now.Format("15:04:05"),
		Location:       wf.Location,
		Details:        wf.Details,
		Region:         wf.Region,
		Status:         domain.ReportPending,
		SubmissionDate: now,
	}

	doc, err := s.renderer.Render(pending, bike, owner, wf.DraftText, wf.Region)
	if err != nil {
		s.logger.Error("Failed to render document", map[string]interface{}{
			"error":       err.Error(),
			"workflow_id": workflowID,
		})
		return nil, err
	}

	s.logger.Info("Document rendered", map[string]interface{}{
		"workflow_id": workflowID,
		"filename":    doc.Filename,
		"bytes":       len(doc.Data),
	})

	return doc, nil
}

// Confirm commits the submission: a SUBMITTED TheftReport is created and
// the bike is marked STOLEN, overwriting SAFE or FOR_SALE. Both effects
// belong to one commit; the workflow ends in its terminal state.
func (s *WorkflowService) Confirm(ctx context.Context, workflowID string) (*domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmLocked(ctx, workflowID)
}

func (s *WorkflowService) confirmLocked(ctx context.Context, workflowID string) (*domain.TheftReport, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if wf.State != domain.StateDrafted {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	report := &domain.TheftReport{
		ReportID:       uuid.New(),
		BikeID:         wf.BikeID,
		IncidentDate:   now.Format("2006-01-02"),
		IncidentTime:   now.Format("15:04:05"),
		Location:       wf.Location,
		Details:        wf.Details,
		Region:         wf.Region,
		Status:         domain.ReportSubmitted,
		SubmissionDate: now,
	}

	created, err := s.reportRepo.CreateReport(ctx, report)
	if err != nil {
		s.logger.Error("Failed to persist report", map[string]interface{}{
			"error":       err.Error(),
			"workflow_id": workflowID,
		})
		return nil, err
	}

	// Report and status change are one commit. If the status flip is
	// refused the report is taken back out, so a STOLEN bike always has
	// its report and a refused confirm leaves no report behind.
	if _, err := s.bikeService.MarkStolen(ctx, wf.BikeID); err != nil {
		if delErr := s.reportRepo.DeleteReport(ctx, created.ReportID); delErr != nil {
			s.logger.Error("Failed to roll back report after refused status change", map[string]interface{}{
				"error":     delErr.Error(),
				"report_id": created.ReportID,
			})
		}
		return nil, err
	}

	wf.State = domain.StateSubmitted
	wf.UpdatedAt = now
	if _, err := s.workflowRepo.UpdateWorkflow(ctx, wf); err != nil {
		return nil, err
	}

	s.logger.Info("Theft report submitted", map[string]interface{}{
		"workflow_id": wf.WorkflowID,
		"report_id":   created.ReportID,
		"bike_id":     wf.BikeID,
	})

	return created, nil
}

// OpenOnlineChannelAndConfirm resolves the jurisdiction's online
// submission endpoint and performs the same commit as Confirm. Opening
// the external channel implies intent to submit; keeping the two as one
// named operation makes that auditable. With an unknown region the
// action is unavailable and nothing changes; the PDF path still works.
func (s *WorkflowService) OpenOnlineChannelAndConfirm(ctx context.Context, workflowID string) (*domain.JurisdictionEndpoint, *domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, nil, err
	}
	if wf.State != domain.StateDrafted {
		return nil, nil, domain.ErrInvalidTransition
	}

	endpoint, ok := s.directory.Lookup(wf.Region)
	if !ok {
		s.logger.Warn("No online submission channel for region", map[string]interface{}{
			"workflow_id": workflowID,
			"region":      wf.Region,
		})
		return nil, nil, domain.ErrUnknownJurisdiction
	}

	report, err := s.confirmLocked(ctx, workflowID)
	if err != nil {
		return nil, nil, err
	}
	return endpoint, report, nil
}

func (s *WorkflowService) ListReports(ctx context.Context) ([]*domain.TheftReport, error) {
	return s.reportRepo.ListReports(ctx)
}

func (s *WorkflowService) GetReport(ctx context.Context, reportID string) (*domain.TheftReport, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, fmt.Errorf("invalid report ID: %w", err)
	}
	return s.reportRepo.GetReportByID(ctx, id)
}
