package errs

// Sentinel markers shared by usecases and handlers.
var (
	// Intake
	ErrValidation           = New("validation error")
	ErrSchedulingConstraint = New("booking must be made at least 24 hours in advance")

	// Payment
	ErrPaymentNotCompleted = New("payment not completed")
	ErrInvalidSignature    = New("invalid webhook signature")

	// Idempotency outcomes. Both are success-shaped: callers render them as no-ops.
	ErrAlreadyProcessed  = New("already processed")
	ErrAlreadyProcessing = New("already processing")

	// Collaborators
	ErrCollaborator   = New("collaborator failure")
	ErrConfiguration  = New("configuration error")
	ErrEventNotFound  = New("calendar event not found")
	ErrSessionMissing = New("checkout session not found")
)
