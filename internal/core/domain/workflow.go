package domain

import (
	"time"

	"github.com/google/uuid"
)

type WorkflowState string

const (
	StateCollecting WorkflowState = "COLLECTING"
	StateDrafted    WorkflowState = "DRAFTED"
	StateSubmitted  WorkflowState = "SUBMITTED"
)

// ReportWorkflow carries one theft report from fact collection through
// draft review to confirmed submission. SUBMITTED is terminal; a new
// instance is started for a re-report or another bike.
type ReportWorkflow struct {
	WorkflowID uuid.UUID     `json:"workflow_id"`
	BikeID     uuid.UUID     `json:"bike_id"`
	State      WorkflowState `json:"state"`
	Location   string        `json:"location"`
	Details    string        `json:"details"`
	Region     string        `json:"region"`
	DraftText  string        `json:"draft_text,omitempty"`
	// Generating guards the single suspension point: while the draft
	// call is outstanding the workflow rejects re-entrant transitions.
	Generating bool      `json:"generating"`
	StartedAt  time.Time `json:"started_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
