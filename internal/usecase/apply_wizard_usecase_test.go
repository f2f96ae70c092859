package usecase_test

import (
	"context"
	"testing"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWizard(t *testing.T, gw *MockGateway) (domain.ApplyWizardUsecase, domain.AssistantUsecase) {
	t.Helper()
	assistant := newAssistant(t, gw, &memStore{})
	return usecase.NewApplyWizardUsecase(assistant, 0), assistant
}

func TestWizardFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Open starts at the contact step with profile prefill", func(t *testing.T) {
		wizard, assistant := newWizard(t, new(MockGateway))

		state, err := wizard.Open(ctx, "101")
		assert.NoError(t, err)
		assert.Equal(t, "101", state.JobID)
		assert.Equal(t, domain.WizardStepContact, state.Step)
		assert.Equal(t, "Contact Info", state.StepName)
		assert.NotNil(t, state.ResumeName)

		profile := assistant.Profile(ctx)
		if profile.Email != nil {
			assert.Equal(t, *profile.Email, state.Email)
		}
	})

	t.Run("Open for an unknown job fails", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))

		_, err := wizard.Open(ctx, "no-such-job")
		assert.Error(t, err)
		_, err = wizard.State(ctx)
		assert.Error(t, err)
	})

	t.Run("Next and Back clamp at the edges", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))
		_, err := wizard.Open(ctx, "101")
		assert.NoError(t, err)

		state, err := wizard.Back(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.WizardStepContact, state.Step)

		for i := 0; i < 5; i++ {
			state, err = wizard.Next(ctx)
			assert.NoError(t, err)
		}
		assert.Equal(t, domain.WizardStepReview, state.Step)
		assert.Equal(t, "Review", state.StepName)

		state, err = wizard.Back(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.WizardStepResume, state.Step)
		assert.Equal(t, "Resume & Profile", state.StepName)
	})

	t.Run("Reopening resets progress", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))
		_, _ = wizard.Open(ctx, "101")
		_, _ = wizard.Next(ctx)

		state, err := wizard.Open(ctx, "102")
		assert.NoError(t, err)
		assert.Equal(t, "102", state.JobID)
		assert.Equal(t, domain.WizardStepContact, state.Step)
	})

	t.Run("UpdateContact overwrites the prefill", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))
		_, _ = wizard.Open(ctx, "101")

		state, err := wizard.UpdateContact(ctx, "new@example.com", "+966500000000")
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", state.Email)
		assert.Equal(t, "+966500000000", state.Phone)
	})

	t.Run("ConnectLinkedIn runs the full integration flow", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(emptyBatch())
		wizard, assistant := newWizard(t, gw)
		_, _ = wizard.Open(ctx, "101")

		_, err := wizard.ConnectLinkedIn(ctx)
		assert.NoError(t, err)
		assert.True(t, assistant.Integrations(ctx).LinkedInConnected)
	})

	t.Run("Submit records the application and closes the wizard", func(t *testing.T) {
		wizard, assistant := newWizard(t, new(MockGateway))
		_, _ = wizard.Open(ctx, "101")

		assert.NoError(t, wizard.Submit(ctx))

		_, err := wizard.State(ctx)
		assert.Error(t, err)

		detail, err := assistant.JobDetail(ctx, "101")
		assert.NoError(t, err)
		assert.True(t, detail.Job.Applied)
	})

	t.Run("Submit without an open wizard fails", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))
		assert.Error(t, wizard.Submit(ctx))
	})

	t.Run("Close discards progress", func(t *testing.T) {
		wizard, _ := newWizard(t, new(MockGateway))
		_, _ = wizard.Open(ctx, "101")
		wizard.Close(ctx)

		_, err := wizard.State(ctx)
		assert.Error(t, err)
	})
}
