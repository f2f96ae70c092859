package domain

import "context"

// Apply wizard steps. The flow is strictly linear; forward and back
// transitions are unconditional and no step validates before progressing.
const (
	WizardStepContact = 0
	WizardStepResume  = 1
	WizardStepReview  = 2
)

// WizardStepNames maps step indices to display names.
var WizardStepNames = [...]string{"Contact Info", "Resume & Profile", "Review"}

// WizardState is the in-progress application for one job. It lives only as
// long as the wizard is open; reopening resets to step zero.
type WizardState struct {
	JobID      string  `json:"job_id"`
	Step       int     `json:"step"`
	StepName   string  `json:"step_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	ResumeName *string `json:"resume_name,omitempty"`
	Submitting bool    `json:"submitting"`
}

// ApplyWizardUsecase drives the 3-step apply flow for one job at a time.
type ApplyWizardUsecase interface {
	Open(ctx context.Context, jobID string) (*WizardState, error)
	State(ctx context.Context) (*WizardState, error)
	Next(ctx context.Context) (*WizardState, error)
	Back(ctx context.Context) (*WizardState, error)
	UpdateContact(ctx context.Context, email, phone string) (*WizardState, error)
	ConnectLinkedIn(ctx context.Context) (*WizardState, error)
	Submit(ctx context.Context) error
	Close(ctx context.Context)
}
