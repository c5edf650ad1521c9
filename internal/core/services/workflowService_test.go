package services

import (
	"context"
	"errors"
	"testing"

	"github.com/veloguard/veloguard-backend/internal/adapter/directory"
	"github.com/veloguard/veloguard-backend/internal/adapter/memory"
	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGenerator) GenerateStructured(_ context.Context, _ string, prompt string, _ []byte, _ string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakeRenderer struct {
	renders int
}

func (f *fakeRenderer) Render(_ *domain.TheftReport, bike *domain.Bike, _ *domain.OwnerProfile, _ string, _ string) (*ports.RenderedDocument, error) {
	f.renders++
	return &ports.RenderedDocument{
		Filename: "Diebstahlanzeige_" + bike.Make + ".pdf",
		Data:     []byte("%PDF-fake"),
	}, nil
}

type workflowFixture struct {
	store     *memory.Store
	bikes     *BikeService
	workflows *WorkflowService
	generator *fakeGenerator
	renderer  *fakeRenderer
}

func newWorkflowFixture(t *testing.T, gen *fakeGenerator) *workflowFixture {
	t.Helper()

	store := memory.NewStore()
	log := noopLogger{}
	validate := validator.New()

	bikeService := NewBikeService(memory.NewBikeRepository(store), log, validate)
	drafts := NewDraftService(gen, log, "test-model", "test-model")
	renderer := &fakeRenderer{}
	ownerRepo := memory.NewOwnerRepository(store, &domain.OwnerProfile{
		OwnerID:     uuid.New(),
		Name:        "Max Mustermann",
		DateOfBirth: "1990-05-14",
		Address:     "Musterstraße 1, 50667 Köln",
		Email:       "max@example.com",
	})

	workflows := NewWorkflowService(
		memory.NewWorkflowRepository(store),
		memory.NewReportRepository(store),
		bikeService,
		drafts,
		renderer,
		directory.New(),
		ownerRepo,
		log,
	)

	return &workflowFixture{
		store:     store,
		bikes:     bikeService,
		workflows: workflows,
		generator: gen,
		renderer:  renderer,
	}
}

func (f *workflowFixture) registerBike(t *testing.T, frameNumber string, status domain.BikeStatus) *domain.Bike {
	t.Helper()

	bike, err := f.bikes.RegisterBike(context.Background(), &domain.Bike{
		FrameNumber:         frameNumber,
		Make:                "Canyon",
		Model:               "Spectral 29",
		Color:               "Stealth",
		DistinctiveFeatures: "Kratzer am Oberrohr",
	})
	require.NoError(t, err)

	switch status {
	case domain.StatusForSale:
		bike, err = f.bikes.MarkForSale(context.Background(), bike.BikeID.String(), 1800)
		require.NoError(t, err)
	case domain.StatusSold:
		_, err = f.bikes.MarkForSale(context.Background(), bike.BikeID.String(), 1800)
		require.NoError(t, err)
		bike, err = f.bikes.MarkSold(context.Background(), bike.BikeID.String())
		require.NoError(t, err)
	}
	return bike
}

func TestWorkflowFullLifecycle(t *testing.T) {
	gen := &fakeGenerator{text: "Sehr geehrte Damen und Herren, hiermit erstatte ich Anzeige."}
	f := newWorkflowFixture(t, gen)
	ctx := context.Background()

	bike := f.registerBike(t, "CANYON882", domain.StatusForSale)

	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateCollecting, wf.State)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(),
		"Hauptbahnhof", "Schloss aufgebrochen", "Berlin")
	require.NoError(t, err)
	assert.Equal(t, domain.StateDrafted, wf.State)
	assert.Equal(t, gen.text, wf.DraftText)
	assert.False(t, wf.Generating)

	report, err := f.workflows.Confirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ReportSubmitted, report.Status)
	assert.Equal(t, bike.BikeID, report.BikeID)
	assert.False(t, report.SubmissionDate.Before(wf.StartedAt))

	// A FOR_SALE bike loses its listing on confirmation.
	stolen, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStolen, stolen.Status)

	wf, err = f.workflows.GetWorkflow(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmitted, wf.State)

	// Terminal state: every further transition is refused.
	_, err = f.workflows.Confirm(ctx, wf.WorkflowID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.workflows.ReviseFacts(ctx, wf.WorkflowID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStartReportRefusesNonReportableBike(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "ok"})
	ctx := context.Background()

	sold := f.registerBike(t, "SOLD001", domain.StatusSold)
	_, err := f.workflows.StartReport(ctx, sold.BikeID.String())
	assert.ErrorIs(t, err, domain.ErrBikeNotReportable)

	stolen := f.registerBike(t, "STOLEN01", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, stolen.BikeID.String())
	require.NoError(t, err)
	_, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)
	_, err = f.workflows.Confirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)

	_, err = f.workflows.StartReport(ctx, stolen.BikeID.String())
	assert.ErrorIs(t, err, domain.ErrBikeNotReportable)
}

func TestSubmitFactsRefusesIncompleteInput(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "ok"})
	ctx := context.Background()

	bike := f.registerBike(t, "INCOMPLETE1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	cases := []struct {
		name     string
		location string
		details  string
		region   string
	}{
		{"missing location", "", "Details", "Bayern"},
		{"missing details", "Ort", "   ", "Bayern"},
		{"missing region", "Ort", "Details", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), tc.location, tc.details, tc.region)
			assert.ErrorIs(t, err, domain.ErrValidationIncomplete)
		})
	}

	// Nothing moved, no generation attempt happened.
	current, err := f.workflows.GetWorkflow(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateCollecting, current.State)
	assert.Empty(t, current.DraftText)
	assert.Empty(t, f.generator.prompts)
}

func TestSubmitFactsFallsBackOnGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	f := newWorkflowFixture(t, gen)
	ctx := context.Background()

	bike := f.registerBike(t, "FALLBACK1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)
	assert.Equal(t, domain.StateDrafted, wf.State)
	assert.Equal(t, FallbackReport, wf.DraftText)

	// The fallback draft is confirmable like any other.
	report, err := f.workflows.Confirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ReportSubmitted, report.Status)
}

func TestSubmitFactsFallsBackOnEmptyGeneratorOutput(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "   \n"})
	ctx := context.Background()

	bike := f.registerBike(t, "EMPTY1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)
	assert.Equal(t, FallbackReport, wf.DraftText)
}

func TestReviseFactsDiscardsDraft(t *testing.T) {
	gen := &fakeGenerator{text: "Erster Entwurf"}
	f := newWorkflowFixture(t, gen)
	ctx := context.Background()

	bike := f.registerBike(t, "REVISE1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)
	require.Equal(t, "Erster Entwurf", wf.DraftText)

	wf, err = f.workflows.ReviseFacts(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateCollecting, wf.State)
	assert.Empty(t, wf.DraftText)

	// Editing and resubmitting regenerates from scratch.
	gen.text = "Zweiter Entwurf"
	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Neuer Ort", "Neue Details", "Bayern")
	require.NoError(t, err)
	assert.Equal(t, "Zweiter Entwurf", wf.DraftText)
	assert.Equal(t, "Neuer Ort", wf.Location)
}

func TestRenderDocumentIsSideEffectFree(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	bike := f.registerBike(t, "RENDER1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	// No draft yet, nothing to render.
	_, err = f.workflows.RenderDocument(ctx, wf.WorkflowID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)

	first, err := f.workflows.RenderDocument(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	second, err := f.workflows.RenderDocument(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, first.Filename, second.Filename)
	assert.Equal(t, 2, f.renderer.renders)

	// Neither draft nor bike status changed, no report was created.
	current, err := f.workflows.GetWorkflow(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateDrafted, current.State)
	assert.Equal(t, "Entwurf", current.DraftText)

	stored, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSafe, stored.Status)

	reports, err := f.workflows.ListReports(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestConfirmLeavesNoReportWhenStatusChangeRefused(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	bike := f.registerBike(t, "RACE1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	_, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)

	// The bike is sold while the draft sits waiting for confirmation.
	_, err = f.bikes.MarkForSale(ctx, bike.BikeID.String(), 1200)
	require.NoError(t, err)
	_, err = f.bikes.MarkSold(ctx, bike.BikeID.String())
	require.NoError(t, err)

	// Confirmation is refused and both halves of the commit are undone:
	// no report remains and the workflow is still confirmable state-wise.
	_, err = f.workflows.Confirm(ctx, wf.WorkflowID.String())
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	reports, err := f.workflows.ListReports(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)

	current, err := f.workflows.GetWorkflow(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateDrafted, current.State)

	stored, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, stored.Status)
}

func TestMarkForSaleCommitsPriceWithStatus(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	bike := f.registerBike(t, "PRICE1", domain.StatusSafe)

	listed, err := f.bikes.MarkForSale(ctx, bike.BikeID.String(), 2499)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusForSale, listed.Status)
	assert.Equal(t, 2499.0, listed.ListingPrice)

	stored, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, 2499.0, stored.ListingPrice)
}

func TestOnlineSubmissionUnknownRegion(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	bike := f.registerBike(t, "ATLANTIS1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Atlantis")
	require.NoError(t, err)

	// No online channel for Atlantis: the combined action is unavailable
	// and the workflow stays put.
	_, _, err = f.workflows.OpenOnlineChannelAndConfirm(ctx, wf.WorkflowID.String())
	assert.ErrorIs(t, err, domain.ErrUnknownJurisdiction)

	current, err := f.workflows.GetWorkflow(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateDrafted, current.State)

	stored, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSafe, stored.Status)

	// The plain confirmation path is unaffected.
	report, err := f.workflows.Confirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", report.Region)
}

func TestOnlineSubmissionKnownRegion(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	bike := f.registerBike(t, "BAYERN1", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, bike.BikeID.String())
	require.NoError(t, err)

	wf, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Marienplatz", "Details", "Bayern")
	require.NoError(t, err)

	endpoint, report, err := f.workflows.OpenOnlineChannelAndConfirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)
	assert.Equal(t, "Bayern", endpoint.Region)
	assert.NotEmpty(t, endpoint.URL)
	assert.Equal(t, domain.ReportSubmitted, report.Status)

	stored, err := f.bikes.GetBikeByID(ctx, bike.BikeID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStolen, stored.Status)
}

func TestListSelectableExcludesStolenAndSold(t *testing.T) {
	f := newWorkflowFixture(t, &fakeGenerator{text: "Entwurf"})
	ctx := context.Background()

	safe := f.registerBike(t, "SEL-SAFE", domain.StatusSafe)
	forSale := f.registerBike(t, "SEL-SALE", domain.StatusForSale)
	f.registerBike(t, "SEL-SOLD", domain.StatusSold)

	stolenSource := f.registerBike(t, "SEL-STOLEN", domain.StatusSafe)
	wf, err := f.workflows.StartReport(ctx, stolenSource.BikeID.String())
	require.NoError(t, err)
	_, err = f.workflows.SubmitFacts(ctx, wf.WorkflowID.String(), "Ort", "Details", "Bayern")
	require.NoError(t, err)
	_, err = f.workflows.Confirm(ctx, wf.WorkflowID.String())
	require.NoError(t, err)

	selectable, err := f.bikes.ListSelectable(ctx)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(selectable))
	for _, b := range selectable {
		ids = append(ids, b.BikeID)
	}
	assert.ElementsMatch(t, []uuid.UUID{safe.BikeID, forSale.BikeID}, ids)
}
