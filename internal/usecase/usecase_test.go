package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/internal/seed"
	"linkgen-gcc-backend/internal/usecase"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) AnalyzeJobMatch(ctx context.Context, job *domain.Job, profile *domain.UserProfile) *domain.AnalysisReport {
	args := m.Called(ctx, job, profile)
	return args.Get(0).(*domain.AnalysisReport)
}

func (m *MockGateway) GenerateCoverEmail(ctx context.Context, job *domain.Job, profile *domain.UserProfile) (*domain.EmailDraft, error) {
	args := m.Called(ctx, job, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailDraft), args.Error(1)
}

func (m *MockGateway) GenerateWhatsAppMessage(ctx context.Context, job *domain.Job, profile *domain.UserProfile) *domain.TextDraft {
	args := m.Called(ctx, job, profile)
	return args.Get(0).(*domain.TextDraft)
}

func (m *MockGateway) GenerateSmartAlerts(ctx context.Context, jobs []domain.Job, profile *domain.UserProfile, history *domain.InteractionHistory, integrations *domain.IntegrationState) *domain.AlertBatch {
	args := m.Called(ctx, jobs, profile, history, integrations)
	return args.Get(0).(*domain.AlertBatch)
}

func (m *MockGateway) GenerateInterviewQuestions(ctx context.Context, job *domain.Job) *domain.QuestionSet {
	args := m.Called(ctx, job)
	return args.Get(0).(*domain.QuestionSet)
}

// memStore keeps the snapshot in memory and counts saves.
type memStore struct {
	snap  *domain.AppSnapshot
	saves int
}

func (s *memStore) Load(_ context.Context) (*domain.AppSnapshot, error) { return s.snap, nil }
func (s *memStore) Save(_ context.Context, snap *domain.AppSnapshot) error {
	s.snap = snap
	s.saves++
	return nil
}

// ctxRecordingStore remembers every snapshot together with the state of the
// context it was saved under. Safe for saves from timer goroutines.
type ctxRecordingStore struct {
	mu    sync.Mutex
	snaps []*domain.AppSnapshot
	errs  []error
}

func (s *ctxRecordingStore) Load(_ context.Context) (*domain.AppSnapshot, error) { return nil, nil }
func (s *ctxRecordingStore) Save(ctx context.Context, snap *domain.AppSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, snap)
	s.errs = append(s.errs, ctx.Err())
	return nil
}

// saveWithAlert returns the context error recorded for the first save whose
// snapshot leads with the given alert title, or false when none arrived yet.
func (s *ctxRecordingStore) saveWithAlert(title string) (error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, snap := range s.snaps {
		if len(snap.Alerts) > 0 && snap.Alerts[0].Title == title {
			return s.errs[i], true
		}
	}
	return nil, false
}

func analysisWithScore(score int) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		AnalysisResult: domain.AnalysisResult{
			MatchScore: score,
			Verdict:    "test verdict",
		},
		Source: domain.SourceLive,
	}
}

func emptyBatch() *domain.AlertBatch {
	return &domain.AlertBatch{Drafts: []domain.AlertDraft{}, Source: domain.SourceLive}
}

func smartBatch(jobID string) *domain.AlertBatch {
	return &domain.AlertBatch{
		Drafts: []domain.AlertDraft{
			{
				JobID:           &jobID,
				Title:           "Great match nearby",
				Message:         "This role fits your saved jobs.",
				Type:            domain.AlertTypeSmartMatch,
				SourceContext:   strPtr(domain.AlertSourceLearning),
				Priority:        strPtr(domain.AlertPriorityHigh),
				WhatsAppContent: strPtr("Salam! found a high priority match at SABIC Riyadh for you."),
			},
		},
		Source: domain.SourceLive,
	}
}

func strPtr(s string) *string { return &s }

func newAssistant(t *testing.T, gw *MockGateway, store *memStore) domain.AssistantUsecase {
	t.Helper()
	uc, err := usecase.NewAssistantUsecase(context.Background(), store, gw, validator.New(), usecase.Options{
		SmartAlertSaveInterval: 2,
	})
	assert.NoError(t, err)
	return uc
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("High score raises a high-match alert and toast", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(92))
		uc := newAssistant(t, gw, &memStore{})

		jobID := seed.Jobs()[0].ID
		report, err := uc.Analyze(ctx, jobID)
		assert.NoError(t, err)
		assert.Equal(t, 92, report.MatchScore)

		alerts := uc.Alerts(ctx)
		assert.Len(t, alerts, 1)
		assert.Equal(t, domain.AlertTypeHighMatch, alerts[0].Type)
		assert.Equal(t, "Perfect Match", alerts[0].Title)
		assert.Contains(t, alerts[0].Message, "92% match for")
		assert.True(t, alerts[0].IsHighPriority())

		toast := uc.Toast(ctx)
		assert.NotNil(t, toast)
		assert.Equal(t, alerts[0].ID, toast.ID)

		detail, err := uc.JobDetail(ctx, jobID)
		assert.NoError(t, err)
		assert.True(t, detail.Job.Analyzed)
		assert.Equal(t, 92, *detail.Job.MatchScore)
		assert.NotNil(t, detail.Analysis)
	})

	t.Run("Score below threshold raises no alert", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(70))
		uc := newAssistant(t, gw, &memStore{})

		_, err := uc.Analyze(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.Empty(t, uc.Alerts(ctx))
		assert.Nil(t, uc.Toast(ctx))
	})

	t.Run("Notifications disabled suppresses the alert even on a high score", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(95))
		uc := newAssistant(t, gw, &memStore{})

		prefs := uc.Preferences(ctx)
		prefs.NotificationsEnabled = false
		assert.NoError(t, uc.UpdatePreferences(ctx, &prefs))

		_, err := uc.Analyze(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.Empty(t, uc.Alerts(ctx))
	})

	t.Run("Unknown job is rejected", func(t *testing.T) {
		gw := new(MockGateway)
		uc := newAssistant(t, gw, &memStore{})

		_, err := uc.Analyze(ctx, "no-such-job")
		assert.Error(t, err)
		gw.AssertNotCalled(t, "AnalyzeJobMatch")
	})
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	uc := newAssistant(t, gw, &memStore{})

	jobID := seed.Jobs()[0].ID
	assert.NoError(t, uc.Dismiss(ctx, jobID))

	for _, j := range uc.VisibleJobs(ctx) {
		assert.NotEqual(t, jobID, j.ID)
	}

	// Idempotent
	assert.NoError(t, uc.Dismiss(ctx, jobID))
	assert.Len(t, uc.VisibleJobs(ctx), len(seed.Jobs())-1)
}

func TestSaveCadence(t *testing.T) {
	ctx := context.Background()

	t.Run("Every second save triggers exactly one smart refresh", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(emptyBatch())
		uc := newAssistant(t, gw, &memStore{})

		saved, err := uc.ToggleSave(ctx, "101")
		assert.NoError(t, err)
		assert.True(t, saved)
		gw.AssertNotCalled(t, "GenerateSmartAlerts")

		saved, err = uc.ToggleSave(ctx, "103")
		assert.NoError(t, err)
		assert.True(t, saved)
		gw.AssertNumberOfCalls(t, "GenerateSmartAlerts", 1)
	})

	t.Run("Unsaving never triggers a refresh", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(emptyBatch())
		uc := newAssistant(t, gw, &memStore{})

		_, _ = uc.ToggleSave(ctx, "101")
		_, _ = uc.ToggleSave(ctx, "103") // second save, triggers
		saved, err := uc.ToggleSave(ctx, "103")
		assert.NoError(t, err)
		assert.False(t, saved)
		gw.AssertNumberOfCalls(t, "GenerateSmartAlerts", 1)
	})
}

func TestSmartAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("Repeated refreshes keep one alert per job and type", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		uc := newAssistant(t, gw, &memStore{})

		assert.True(t, uc.TriggerSmartAlerts(ctx))
		assert.True(t, uc.TriggerSmartAlerts(ctx))

		count := 0
		for _, a := range uc.Alerts(ctx) {
			if a.Type == domain.AlertTypeSmartMatch && a.JobID != nil && *a.JobID == "102" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Matched job gains a smart match reason", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		uc := newAssistant(t, gw, &memStore{})

		uc.TriggerSmartAlerts(ctx)

		detail, err := uc.JobDetail(ctx, "102")
		assert.NoError(t, err)
		assert.NotNil(t, detail.Job.SmartMatchReason)
		assert.Equal(t, "Great match nearby", *detail.Job.SmartMatchReason)
	})

	t.Run("Concurrent refresh is dropped", func(t *testing.T) {
		gw := new(MockGateway)
		release := make(chan struct{})
		entered := make(chan struct{})
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(emptyBatch())
		uc := newAssistant(t, gw, &memStore{})

		done := make(chan bool)
		go func() { done <- uc.TriggerSmartAlerts(ctx) }()
		<-entered

		assert.False(t, uc.TriggerSmartAlerts(ctx))
		close(release)
		assert.True(t, <-done)
		gw.AssertNumberOfCalls(t, "GenerateSmartAlerts", 1)
	})

	t.Run("High priority alert with WhatsApp content echoes a sent confirmation", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		uc := newAssistant(t, gw, &memStore{})

		prefs := uc.Preferences(ctx)
		prefs.WhatsAppAlertsEnabled = true
		assert.NoError(t, uc.UpdatePreferences(ctx, &prefs))

		uc.TriggerSmartAlerts(ctx)

		alerts := uc.Alerts(ctx)
		assert.Equal(t, "WhatsApp Alert Sent", alerts[0].Title)
		assert.Equal(t, domain.AlertTypeSystem, alerts[0].Type)
		assert.True(t, alerts[0].Read)
		// Preview is capped at 40 characters
		assert.Contains(t, alerts[0].Message, "Salam! found a high priority match at SA")
		assert.NotContains(t, alerts[0].Message, "Riyadh for you")
	})

	t.Run("Echo preview truncates multibyte content by characters", func(t *testing.T) {
		gw := new(MockGateway)
		content := "سلام! وجدت وظيفة مطابقة بدرجة عالية لك في شركة أرامكو بالظهران، راسلهم اليوم"
		batch := smartBatch("102")
		batch.Drafts[0].WhatsAppContent = &content
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(batch)
		uc := newAssistant(t, gw, &memStore{})

		prefs := uc.Preferences(ctx)
		prefs.WhatsAppAlertsEnabled = true
		assert.NoError(t, uc.UpdatePreferences(ctx, &prefs))

		uc.TriggerSmartAlerts(ctx)

		alerts := uc.Alerts(ctx)
		assert.Equal(t, "WhatsApp Alert Sent", alerts[0].Title)
		assert.True(t, utf8.ValidString(alerts[0].Message))
		assert.Contains(t, alerts[0].Message, string([]rune(content)[:40]))
	})

	t.Run("Delayed echo persists after the request context is cancelled", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		store := &ctxRecordingStore{}
		uc, err := usecase.NewAssistantUsecase(context.Background(), store, gw, validator.New(), usecase.Options{
			SmartAlertSaveInterval: 2,
			WhatsAppEchoDelay:      10 * time.Millisecond,
		})
		assert.NoError(t, err)

		prefs := uc.Preferences(ctx)
		prefs.WhatsAppAlertsEnabled = true
		assert.NoError(t, uc.UpdatePreferences(ctx, &prefs))

		reqCtx, cancel := context.WithCancel(context.Background())
		assert.True(t, uc.TriggerSmartAlerts(reqCtx))
		cancel()

		assert.Eventually(t, func() bool {
			_, ok := store.saveWithAlert("WhatsApp Alert Sent")
			return ok
		}, time.Second, 5*time.Millisecond)

		saveErr, _ := store.saveWithAlert("WhatsApp Alert Sent")
		assert.NoError(t, saveErr)
	})

	t.Run("WhatsApp echo disabled by default", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		uc := newAssistant(t, gw, &memStore{})

		uc.TriggerSmartAlerts(ctx)

		for _, a := range uc.Alerts(ctx) {
			assert.NotEqual(t, "WhatsApp Alert Sent", a.Title)
		}
	})
}

func TestToastLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Toast clears itself after its TTL", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(92))
		uc, err := usecase.NewAssistantUsecase(ctx, &memStore{}, gw, validator.New(), usecase.Options{
			SmartAlertSaveInterval: 2,
			ToastTTL:               20 * time.Millisecond,
		})
		assert.NoError(t, err)

		_, err = uc.Analyze(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.NotNil(t, uc.Toast(ctx))

		assert.Eventually(t, func() bool { return uc.Toast(ctx) == nil }, time.Second, 5*time.Millisecond)
	})

	t.Run("Expiring timer leaves a newer toast alone", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(92))
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smartBatch("102"))
		// SmartToastTTL stays zero so the replacement toast never expires on
		// its own; only the first toast's timer can fire.
		uc, err := usecase.NewAssistantUsecase(ctx, &memStore{}, gw, validator.New(), usecase.Options{
			SmartAlertSaveInterval: 2,
			ToastTTL:               20 * time.Millisecond,
		})
		assert.NoError(t, err)

		_, err = uc.Analyze(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.True(t, uc.TriggerSmartAlerts(ctx))

		toast := uc.Toast(ctx)
		if assert.NotNil(t, toast) {
			assert.Equal(t, "Great match nearby", toast.Title)
		}

		time.Sleep(60 * time.Millisecond)
		toast = uc.Toast(ctx)
		if assert.NotNil(t, toast) {
			assert.Equal(t, "Great match nearby", toast.Title)
		}
	})
}

func TestIntegrations(t *testing.T) {
	ctx := context.Background()

	t.Run("Connecting LinkedIn lifts profile strength and refreshes alerts", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(emptyBatch())
		uc := newAssistant(t, gw, &memStore{})

		state, err := uc.Connect(ctx, domain.ServiceLinkedIn)
		assert.NoError(t, err)
		assert.True(t, state.LinkedInConnected)
		assert.NotNil(t, state.LastSync)
		assert.NotNil(t, state.SyncedDataSummary)
		assert.Contains(t, *state.SyncedDataSummary.LinkedIn, "850 Connections")

		profile := uc.Profile(ctx)
		assert.Equal(t, domain.ProfileStrengthConnected, *profile.ProfileStrength)
		gw.AssertNumberOfCalls(t, "GenerateSmartAlerts", 1)
	})

	t.Run("Disconnecting LinkedIn reverts profile strength", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateSmartAlerts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(emptyBatch())
		uc := newAssistant(t, gw, &memStore{})

		_, err := uc.Connect(ctx, domain.ServiceLinkedIn)
		assert.NoError(t, err)

		state, err := uc.Disconnect(ctx, domain.ServiceLinkedIn)
		assert.NoError(t, err)
		assert.False(t, state.LinkedInConnected)
		// Synced summary survives disconnection
		assert.NotNil(t, state.SyncedDataSummary)

		profile := uc.Profile(ctx)
		assert.Equal(t, domain.ProfileStrengthBase, *profile.ProfileStrength)
	})

	t.Run("Unknown service is rejected", func(t *testing.T) {
		gw := new(MockGateway)
		uc := newAssistant(t, gw, &memStore{})

		_, err := uc.Connect(ctx, "slack")
		assert.Error(t, err)
		_, err = uc.Disconnect(ctx, "slack")
		assert.Error(t, err)
	})
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	uc := newAssistant(t, gw, &memStore{})

	jobID := seed.Jobs()[1].ID
	assert.NoError(t, uc.SubmitApplication(ctx, jobID))

	detail, err := uc.JobDetail(ctx, jobID)
	assert.NoError(t, err)
	assert.True(t, detail.Job.Applied)
	assert.NotNil(t, detail.Job.ApplicationDate)
	assert.Equal(t, domain.ApplicationStatusApplied, *detail.Job.ApplicationStatus)

	applied := uc.AppliedJobs(ctx)
	assert.Len(t, applied, 1)
	assert.Equal(t, jobID, applied[0].ID)

	alerts := uc.Alerts(ctx)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "Application Sent!", alerts[0].Title)

	stats := uc.Stats(ctx)
	assert.Equal(t, 1, stats.Applications)
}

func TestAlertsReadState(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	gw.On("AnalyzeJobMatch", mock.Anything, mock.Anything, mock.Anything).Return(analysisWithScore(90))
	uc := newAssistant(t, gw, &memStore{})

	_, err := uc.Analyze(ctx, seed.Jobs()[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, uc.Stats(ctx).UnreadAlerts)

	uc.MarkAllAlertsRead(ctx)
	assert.Equal(t, 0, uc.Stats(ctx).UnreadAlerts)
	for _, a := range uc.Alerts(ctx) {
		assert.True(t, a.Read)
	}
}

func TestProfileValidation(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	uc := newAssistant(t, gw, &memStore{})

	t.Run("Missing required fields are rejected", func(t *testing.T) {
		err := uc.UpdateProfile(ctx, &domain.UserProfile{Name: "Ahmed"})
		assert.Error(t, err)
	})

	t.Run("Profile strength cannot be forced via update", func(t *testing.T) {
		forced := 100
		profile := uc.Profile(ctx)
		profile.ProfileStrength = &forced
		assert.NoError(t, uc.UpdateProfile(ctx, &profile))

		got := uc.Profile(ctx)
		assert.Equal(t, domain.ProfileStrengthBase, *got.ProfileStrength)
	})

	t.Run("Invalid preference frequency is rejected", func(t *testing.T) {
		prefs := uc.Preferences(ctx)
		prefs.NotificationFrequency = "hourly"
		assert.Error(t, uc.UpdatePreferences(ctx, &prefs))
	})
}

func TestOutreach(t *testing.T) {
	ctx := context.Background()

	t.Run("Cover email carries a mailto deep link", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateCoverEmail", mock.Anything, mock.Anything, mock.Anything).Return(&domain.EmailDraft{
			Subject: "Application for NEOM",
			Body:    "Dear team",
			Source:  domain.SourceLive,
		}, nil)
		uc := newAssistant(t, gw, &memStore{})

		draft, err := uc.DraftCoverEmail(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, "Application for NEOM", draft.Subject)
		assert.Contains(t, draft.DeepLink, "mailto:")
		assert.Contains(t, draft.DeepLink, "subject=Application%20for%20NEOM")
	})

	t.Run("Cover email generation failure surfaces an error", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateCoverEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("model unavailable"))
		uc := newAssistant(t, gw, &memStore{})

		_, err := uc.DraftCoverEmail(ctx, seed.Jobs()[0].ID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to generate email")
	})

	t.Run("WhatsApp draft carries a wa.me deep link", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateWhatsAppMessage", mock.Anything, mock.Anything, mock.Anything).Return(&domain.TextDraft{
			Text:   "Salam, great role",
			Source: domain.SourceLive,
		})
		uc := newAssistant(t, gw, &memStore{})

		draft, err := uc.DraftWhatsAppMessage(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, "Salam, great role", draft.Body)
		assert.Contains(t, draft.DeepLink, "https://wa.me/?text=")
	})

	t.Run("Interview questions pass through from the gateway", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("GenerateInterviewQuestions", mock.Anything, mock.Anything).Return(&domain.QuestionSet{
			Questions: []domain.InterviewQuestion{{Question: "Why NEOM?", Type: "Behavioral", AITip: "Mention Vision 2030."}},
			Source:    domain.SourceLive,
		})
		uc := newAssistant(t, gw, &memStore{})

		questions, err := uc.InterviewQuestions(ctx, seed.Jobs()[0].ID)
		assert.NoError(t, err)
		assert.Len(t, questions, 1)
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("Mutations write a snapshot", func(t *testing.T) {
		gw := new(MockGateway)
		store := &memStore{}
		uc := newAssistant(t, gw, store)

		_, err := uc.ToggleSave(ctx, "101")
		assert.NoError(t, err)
		assert.Greater(t, store.saves, 0)
		assert.NotNil(t, store.snap)
		assert.True(t, store.snap.History.IsSaved("101"))
	})

	t.Run("A new instance restores the stored state", func(t *testing.T) {
		gw := new(MockGateway)
		store := &memStore{}
		uc := newAssistant(t, gw, store)

		_, err := uc.ToggleSave(ctx, "101")
		assert.NoError(t, err)
		assert.NoError(t, uc.Dismiss(ctx, "104"))

		restored := newAssistant(t, gw, store)
		assert.Equal(t, 1, restored.Stats(ctx).SavedJobs)
		for _, j := range restored.VisibleJobs(ctx) {
			assert.NotEqual(t, "104", j.ID)
		}
	})

	t.Run("Empty store falls back to seed defaults", func(t *testing.T) {
		gw := new(MockGateway)
		uc := newAssistant(t, gw, &memStore{})

		assert.Len(t, uc.VisibleJobs(ctx), len(seed.Jobs()))
		profile := uc.Profile(ctx)
		assert.NotEmpty(t, profile.Name)
		assert.Equal(t, domain.ProfileStrengthBase, *profile.ProfileStrength)
	})
}
