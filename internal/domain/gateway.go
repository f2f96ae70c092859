package domain

import "context"

// AlertDraft is a generator-produced alert before the assistant stamps
// identity, timestamp and read state onto it.
type AlertDraft struct {
	JobID           *string       `json:"jobId,omitempty"`
	Title           string        `json:"title"`
	Message         string        `json:"message"`
	Type            string        `json:"type"`
	SourceContext   *string       `json:"sourceContext,omitempty"`
	Priority        *string       `json:"priority,omitempty"`
	EmailContent    *EmailContent `json:"emailContent,omitempty"`
	WhatsAppContent *string       `json:"whatsappContent,omitempty"`
}

// EmailDraft is a generated cover email.
type EmailDraft struct {
	Subject string       `json:"subject"`
	Body    string       `json:"body"`
	Source  ResultSource `json:"-"`
}

// TextDraft is generated plain text (WhatsApp outreach).
type TextDraft struct {
	Text   string
	Source ResultSource
}

// AlertBatch is a generated batch of smart-alert drafts.
type AlertBatch struct {
	Drafts []AlertDraft
	Source ResultSource
}

// QuestionSet is a generated interview question list.
type QuestionSet struct {
	Questions []InterviewQuestion
	Source    ResultSource
}

// AIGateway turns domain requests into model prompts and parses structured
// responses. Every operation degrades to a fixed canned value when no
// endpoint is configured or the call fails; only GenerateCoverEmail may
// surface an error, and only for a failed live attempt.
type AIGateway interface {
	AnalyzeJobMatch(ctx context.Context, job *Job, profile *UserProfile) *AnalysisReport
	GenerateCoverEmail(ctx context.Context, job *Job, profile *UserProfile) (*EmailDraft, error)
	GenerateWhatsAppMessage(ctx context.Context, job *Job, profile *UserProfile) *TextDraft
	GenerateSmartAlerts(ctx context.Context, jobs []Job, profile *UserProfile, history *InteractionHistory, integrations *IntegrationState) *AlertBatch
	GenerateInterviewQuestions(ctx context.Context, job *Job) *QuestionSet
}
