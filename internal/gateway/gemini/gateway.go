package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/google/generative-ai-go/genai"
)

// Gateway implements domain.AIGateway. A nil genai client means no API key
// was configured; every call then serves its canned fallback after the
// configured offline delay, mimicking the latency of a real call.
type Gateway struct {
	client       *genai.Client
	model        string
	offlineDelay time.Duration
}

var _ domain.AIGateway = (*Gateway)(nil)

func New(client *genai.Client, model string, offlineDelay time.Duration) *Gateway {
	return &Gateway{
		client:       client,
		model:        model,
		offlineDelay: offlineDelay,
	}
}

// Offline reports whether the gateway serves canned results only.
func (g *Gateway) Offline() bool {
	return g.client == nil
}

func (g *Gateway) AnalyzeJobMatch(ctx context.Context, job *domain.Job, profile *domain.UserProfile) *domain.AnalysisReport {
	if g.client == nil {
		sleepCtx(ctx, g.offlineDelay)
		return fallbackAnalysis()
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore":    {Type: genai.TypeInteger},
			"pros":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"cons":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"missingSkills": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"verdict":       {Type: genai.TypeString},
			"cultureFit":    {Type: genai.TypeString, Description: "Assessment of fit for GCC business culture"},
		},
		Required: []string{"matchScore", "pros", "cons", "missingSkills", "verdict"},
	}

	text, err := g.generateJSON(ctx, analysisPrompt(job, profile), schema)
	if err != nil {
		logger.Log.Error("Gemini analysis failed", "job_id", job.ID, "error", err)
		return fallbackAnalysis()
	}

	var raw struct {
		MatchScore    int      `json:"matchScore"`
		Pros          []string `json:"pros"`
		Cons          []string `json:"cons"`
		MissingSkills []string `json:"missingSkills"`
		Verdict       string   `json:"verdict"`
		CultureFit    *string  `json:"cultureFit"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		logger.Log.Error("Gemini analysis returned unparseable JSON", "job_id", job.ID, "error", err)
		return fallbackAnalysis()
	}

	return &domain.AnalysisReport{
		AnalysisResult: domain.AnalysisResult{
			MatchScore:    raw.MatchScore,
			Pros:          raw.Pros,
			Cons:          raw.Cons,
			MissingSkills: raw.MissingSkills,
			Verdict:       raw.Verdict,
			CultureFit:    raw.CultureFit,
		},
		Source: domain.SourceLive,
	}
}

// GenerateCoverEmail is the one operation whose live-path failure is
// surfaced to the caller instead of being masked by a fallback.
func (g *Gateway) GenerateCoverEmail(ctx context.Context, job *domain.Job, profile *domain.UserProfile) (*domain.EmailDraft, error) {
	if g.client == nil {
		return fallbackCoverEmail(job, profile), nil
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"subject": {Type: genai.TypeString},
			"body":    {Type: genai.TypeString},
		},
	}

	text, err := g.generateJSON(ctx, coverEmailPrompt(job, profile), schema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate email: %w", err)
	}

	var draft domain.EmailDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("failed to generate email: %w", err)
	}
	draft.Source = domain.SourceLive
	return &draft, nil
}

func (g *Gateway) GenerateWhatsAppMessage(ctx context.Context, job *domain.Job, profile *domain.UserProfile) *domain.TextDraft {
	if g.client == nil {
		return fallbackWhatsApp(job, profile)
	}

	text, err := g.generateText(ctx, whatsAppPrompt(job, profile))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.Log.Warn("Gemini WhatsApp draft failed", "job_id", job.ID, "error", err)
		}
		return fallbackWhatsApp(job, profile)
	}
	return &domain.TextDraft{Text: strings.TrimSpace(text), Source: domain.SourceLive}
}

func (g *Gateway) GenerateSmartAlerts(ctx context.Context, jobs []domain.Job, profile *domain.UserProfile, history *domain.InteractionHistory, integrations *domain.IntegrationState) *domain.AlertBatch {
	if g.client == nil {
		return fallbackSmartAlerts()
	}

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":         {Type: genai.TypeString},
				"message":       {Type: genai.TypeString},
				"jobId":         {Type: genai.TypeString},
				"type":          {Type: genai.TypeString, Enum: []string{domain.AlertTypeSmartMatch}},
				"sourceContext": {Type: genai.TypeString, Enum: []string{domain.AlertSourceLinkedIn, domain.AlertSourceGmail, domain.AlertSourceLearning}},
				"priority":      {Type: genai.TypeString, Enum: []string{domain.AlertPriorityHigh, domain.AlertPriorityNormal}},
				"emailContent": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"subject": {Type: genai.TypeString},
						"body":    {Type: genai.TypeString},
					},
				},
				"whatsappContent": {Type: genai.TypeString, Description: "Short message for WhatsApp notification"},
			},
		},
	}

	text, err := g.generateJSON(ctx, smartAlertsPrompt(jobs, profile, integrations), schema)
	if err != nil {
		logger.Log.Error("Gemini smart alerts failed", "error", err)
		return fallbackSmartAlerts()
	}

	var drafts []domain.AlertDraft
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		logger.Log.Error("Gemini smart alerts returned unparseable JSON", "error", err)
		return fallbackSmartAlerts()
	}
	for i := range drafts {
		if drafts[i].Type == "" {
			drafts[i].Type = domain.AlertTypeSmartMatch
		}
	}
	return &domain.AlertBatch{Drafts: drafts, Source: domain.SourceLive}
}

func (g *Gateway) GenerateInterviewQuestions(ctx context.Context, job *domain.Job) *domain.QuestionSet {
	if g.client == nil {
		return fallbackInterviewQuestions()
	}

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"type":     {Type: genai.TypeString, Enum: []string{"Technical", "Behavioral"}},
				"aiTip":    {Type: genai.TypeString},
			},
		},
	}

	text, err := g.generateJSON(ctx, interviewPrompt(job), schema)
	if err != nil {
		logger.Log.Warn("Gemini interview questions failed", "job_id", job.ID, "error", err)
		return &domain.QuestionSet{Questions: []domain.InterviewQuestion{}, Source: domain.SourceLive}
	}

	var raw []struct {
		Question string `json:"question"`
		Type     string `json:"type"`
		AITip    string `json:"aiTip"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		logger.Log.Warn("Gemini interview questions returned unparseable JSON", "job_id", job.ID, "error", err)
		return &domain.QuestionSet{Questions: []domain.InterviewQuestion{}, Source: domain.SourceLive}
	}

	questions := make([]domain.InterviewQuestion, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, domain.InterviewQuestion{Question: q.Question, Type: q.Type, AITip: q.AITip})
	}
	return &domain.QuestionSet{Questions: questions, Source: domain.SourceLive}
}
