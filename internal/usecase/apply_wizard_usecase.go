package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/apperror"
)

type applyWizardUsecase struct {
	assistant   domain.AssistantUsecase
	submitDelay time.Duration

	mu    sync.Mutex
	state *domain.WizardState
}

// NewApplyWizardUsecase returns the wizard driver. One application is in
// flight at a time; opening for a new job discards any previous progress.
func NewApplyWizardUsecase(assistant domain.AssistantUsecase, submitDelay time.Duration) domain.ApplyWizardUsecase {
	return &applyWizardUsecase{
		assistant:   assistant,
		submitDelay: submitDelay,
	}
}

func (w *applyWizardUsecase) Open(ctx context.Context, jobID string) (*domain.WizardState, error) {
	if _, err := w.assistant.JobDetail(ctx, jobID); err != nil {
		return nil, err
	}

	// Pre-fill contact fields and a canned resume from the profile.
	profile := w.assistant.Profile(ctx)
	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}
	phone := ""
	if profile.Phone != nil {
		phone = *profile.Phone
	}
	resume := strings.ReplaceAll(profile.Name, " ", "_") + "_Resume_2024.pdf"

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = &domain.WizardState{
		JobID:      jobID,
		Step:       domain.WizardStepContact,
		StepName:   domain.WizardStepNames[domain.WizardStepContact],
		Email:      email,
		Phone:      phone,
		ResumeName: &resume,
	}
	return w.copyLocked(), nil
}

func (w *applyWizardUsecase) State(_ context.Context) (*domain.WizardState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == nil {
		return nil, apperror.NotFound("No application in progress")
	}
	return w.copyLocked(), nil
}

func (w *applyWizardUsecase) Next(_ context.Context) (*domain.WizardState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == nil {
		return nil, apperror.NotFound("No application in progress")
	}
	if w.state.Step < domain.WizardStepReview {
		w.state.Step++
		w.state.StepName = domain.WizardStepNames[w.state.Step]
	}
	return w.copyLocked(), nil
}

func (w *applyWizardUsecase) Back(_ context.Context) (*domain.WizardState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == nil {
		return nil, apperror.NotFound("No application in progress")
	}
	if w.state.Step > domain.WizardStepContact {
		w.state.Step--
		w.state.StepName = domain.WizardStepNames[w.state.Step]
	}
	return w.copyLocked(), nil
}

func (w *applyWizardUsecase) UpdateContact(_ context.Context, email, phone string) (*domain.WizardState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == nil {
		return nil, apperror.NotFound("No application in progress")
	}
	w.state.Email = email
	w.state.Phone = phone
	return w.copyLocked(), nil
}

// ConnectLinkedIn runs the full integration connect from inside the wizard
// and returns once the sync completes, so the resume step can reflect the
// imported profile.
func (w *applyWizardUsecase) ConnectLinkedIn(ctx context.Context) (*domain.WizardState, error) {
	w.mu.Lock()
	if w.state == nil {
		w.mu.Unlock()
		return nil, apperror.NotFound("No application in progress")
	}
	w.mu.Unlock()

	if _, err := w.assistant.Connect(ctx, domain.ServiceLinkedIn); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == nil {
		return nil, apperror.NotFound("No application in progress")
	}
	return w.copyLocked(), nil
}

// Submit simulates upload latency, records the application and closes the
// wizard. The wizard closes even though nothing can fail past the record
// step; the submit delay is the only await.
func (w *applyWizardUsecase) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.state == nil {
		w.mu.Unlock()
		return apperror.NotFound("No application in progress")
	}
	w.state.Submitting = true
	jobID := w.state.JobID
	w.mu.Unlock()

	sleep(ctx, w.submitDelay)

	if err := w.assistant.SubmitApplication(ctx, jobID); err != nil {
		w.mu.Lock()
		if w.state != nil && w.state.JobID == jobID {
			w.state.Submitting = false
		}
		w.mu.Unlock()
		return err
	}

	w.mu.Lock()
	w.state = nil
	w.mu.Unlock()
	return nil
}

func (w *applyWizardUsecase) Close(_ context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = nil
}

func (w *applyWizardUsecase) copyLocked() *domain.WizardState {
	s := *w.state
	if w.state.ResumeName != nil {
		r := *w.state.ResumeName
		s.ResumeName = &r
	}
	return &s
}
