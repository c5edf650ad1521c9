package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "PENDING"
	ReportSubmitted ReportStatus = "SUBMITTED"
	// ReportAcknowledged is reserved for a future confirmation channel
	// from the police side. Nothing produces it internally.
	ReportAcknowledged ReportStatus = "ACKNOWLEDGED"
)

// TheftReport is created only by confirming a report workflow. Once
// created it is immutable apart from the PENDING -> SUBMITTED transition.
// swagger:model domain.TheftReport
type TheftReport struct {
	ReportID       uuid.UUID    `json:"report_id"`
	BikeID         uuid.UUID    `json:"bike_id" validate:"required"`
	IncidentDate   string       `json:"incident_date"`
	IncidentTime   string       `json:"incident_time"`
	Location       string       `json:"location" validate:"required"`
	Details        string       `json:"details" validate:"required"`
	Region         string       `json:"region"`
	Status         ReportStatus `json:"status"`
	SubmissionDate time.Time    `json:"submission_date"`
}
