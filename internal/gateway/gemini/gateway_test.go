package gemini_test

import (
	"context"
	"testing"
	"time"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/internal/gateway/gemini"
	"linkgen-gcc-backend/internal/seed"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func offlineGateway() *gemini.Gateway {
	return gemini.New(nil, "gemini-2.5-flash", 0)
}

func TestOfflineGateway(t *testing.T) {
	ctx := context.Background()
	jobs := seed.Jobs()
	job := &jobs[0]
	profile := seed.DefaultProfile()

	gw := offlineGateway()
	assert.True(t, gw.Offline())

	t.Run("Analysis serves the deterministic canned verdict", func(t *testing.T) {
		report := gw.AnalyzeJobMatch(ctx, job, &profile)
		assert.Equal(t, 88, report.MatchScore)
		assert.Equal(t, domain.SourceFallback, report.Source)
		assert.Contains(t, report.MissingSkills, "SAMA Regulations")
		assert.NotEmpty(t, report.Pros)
		assert.NotEmpty(t, report.Verdict)
	})

	t.Run("Cover email falls back without an error", func(t *testing.T) {
		draft, err := gw.GenerateCoverEmail(ctx, job, &profile)
		assert.NoError(t, err)
		assert.Equal(t, domain.SourceFallback, draft.Source)
		assert.Contains(t, draft.Subject, job.Title)
		assert.Contains(t, draft.Subject, profile.Name)
		assert.Contains(t, draft.Body, job.Company)
	})

	t.Run("WhatsApp draft uses the canned greeting", func(t *testing.T) {
		draft := gw.GenerateWhatsAppMessage(ctx, job, &profile)
		assert.Equal(t, domain.SourceFallback, draft.Source)
		assert.Contains(t, draft.Text, "Salam")
		assert.Contains(t, draft.Text, job.Title)
	})

	t.Run("Smart alerts serve one high priority draft", func(t *testing.T) {
		history := &domain.InteractionHistory{}
		integrations := &domain.IntegrationState{}

		batch := gw.GenerateSmartAlerts(ctx, jobs, &profile, history, integrations)
		assert.Equal(t, domain.SourceFallback, batch.Source)
		assert.Len(t, batch.Drafts, 1)

		draft := batch.Drafts[0]
		assert.Equal(t, domain.AlertTypeSmartMatch, draft.Type)
		assert.Equal(t, domain.AlertPriorityHigh, *draft.Priority)
		assert.NotNil(t, draft.EmailContent)
		assert.NotNil(t, draft.WhatsAppContent)
	})

	t.Run("Interview questions serve three canned entries", func(t *testing.T) {
		set := gw.GenerateInterviewQuestions(ctx, job)
		assert.Equal(t, domain.SourceFallback, set.Source)
		assert.Len(t, set.Questions, 3)
		for _, q := range set.Questions {
			assert.NotEmpty(t, q.Question)
			assert.NotEmpty(t, q.Type)
			assert.NotEmpty(t, q.AITip)
		}
	})
}

func TestOfflineDelayHonorsContext(t *testing.T) {
	gw := gemini.New(nil, "gemini-2.5-flash", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := seed.Jobs()
	profile := seed.DefaultProfile()

	start := time.Now()
	report := gw.AnalyzeJobMatch(ctx, &jobs[0], &profile)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, domain.SourceFallback, report.Source)
}
