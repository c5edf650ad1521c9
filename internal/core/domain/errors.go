package domain

import "errors"

var (
	ErrBikeNotFound      = errors.New("bike not found")
	ErrReportNotFound    = errors.New("report not found")
	ErrAccessoryNotFound = errors.New("accessory not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrWorkflowNotFound  = errors.New("workflow not found")

	// ErrBikeNotReportable: only SAFE or FOR_SALE bikes can enter a
	// theft report workflow.
	ErrBikeNotReportable = errors.New("bike is not reportable")

	// ErrValidationIncomplete: a workflow transition was attempted with
	// required fields missing. The transition is refused, nothing changes.
	ErrValidationIncomplete = errors.New("required fields missing")

	// ErrUnknownJurisdiction: region has no entry in the directory, so
	// no online submission channel is available.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrInvalidTransition: the requested operation is not legal in the
	// workflow's current state.
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrGenerationInFlight: the draft call is outstanding and the
	// transition trigger is disabled.
	ErrGenerationInFlight = errors.New("draft generation already in progress")

	// ErrStatusConflict: compare-and-set on the bike status found an
	// unexpected current value.
	ErrStatusConflict = errors.New("bike status conflict")

	ErrFrameNumberTaken = errors.New("frame number already registered")
)
