package domain

import (
	"context"
)

// Application status constants
const (
	ApplicationStatusApplied   = "Applied"
	ApplicationStatusScreening = "Screening"
	ApplicationStatusInterview = "Interview"
	ApplicationStatusOffer     = "Offer"
	ApplicationStatusRejected  = "Rejected"
)

// Job source channels
const (
	JobSourceLinkedIn  = "LinkedIn"
	JobSourceManual    = "Manual"
	JobSourceGmailScan = "Gmail Scan"
)

// Job is a single posting in the feed. The ID is immutable; every other
// field may be overwritten in place as the user interacts with it. Jobs are
// never deleted, only hidden once dismissed.
type Job struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Company         string  `json:"company"`
	Location        string  `json:"location"`
	PostedAt        string  `json:"posted_at"`
	Description     string  `json:"description"`
	LogoURL         string  `json:"logo_url"`
	Salary          *string `json:"salary,omitempty"`
	Currency        *string `json:"currency,omitempty"` // SAR, AED, QAR, USD
	Type            string  `json:"type"`               // Remote, On-site, Hybrid
	Source          string  `json:"source"`
	ApplicantsCount *int    `json:"applicants_count,omitempty"`
	AlumniCount     *int    `json:"alumni_count,omitempty"`
	IsPromoted      bool    `json:"is_promoted,omitempty"`

	// GCC specifics
	VisaRequirements *string `json:"visa_requirements,omitempty"`
	ArabicRequired   bool    `json:"arabic_required"`

	// Annotations written back by the assistant
	Analyzed          bool    `json:"analyzed,omitempty"`
	MatchScore        *int    `json:"match_score,omitempty"`
	SmartMatchReason  *string `json:"smart_match_reason,omitempty"`
	Applied           bool    `json:"applied,omitempty"`
	ApplicationDate   *int64  `json:"application_date,omitempty"`
	ApplicationStatus *string `json:"application_status,omitempty"`
}

// JobDetail pairs a job with its cached analysis, if any.
type JobDetail struct {
	Job      *Job            `json:"job"`
	Analysis *AnalysisReport `json:"analysis,omitempty"`
	Saved    bool            `json:"saved"`
}

// DashboardStats feeds the dashboard tiles.
type DashboardStats struct {
	SavedJobs    int `json:"saved_jobs"`
	SmartMatches int `json:"smart_matches"`
	Applications int `json:"applications"`
	UnreadAlerts int `json:"unread_alerts"`
}

// AssistantUsecase is the single owner of all mutable application state.
// Every mutation goes through it and is followed by a full snapshot save.
type AssistantUsecase interface {
	VisibleJobs(ctx context.Context) []Job
	AppliedJobs(ctx context.Context) []Job
	JobDetail(ctx context.Context, jobID string) (*JobDetail, error)
	SelectJob(ctx context.Context, jobID string) error

	Analyze(ctx context.Context, jobID string) (*AnalysisReport, error)
	ToggleSave(ctx context.Context, jobID string) (saved bool, err error)
	Dismiss(ctx context.Context, jobID string) error
	SubmitApplication(ctx context.Context, jobID string) error

	Alerts(ctx context.Context) []Alert
	MarkAllAlertsRead(ctx context.Context)
	TriggerSmartAlerts(ctx context.Context) (started bool)

	Profile(ctx context.Context) UserProfile
	UpdateProfile(ctx context.Context, profile *UserProfile) error
	Preferences(ctx context.Context) UserPreferences
	UpdatePreferences(ctx context.Context, prefs *UserPreferences) error

	Integrations(ctx context.Context) IntegrationState
	Connect(ctx context.Context, service string) (*IntegrationState, error)
	Disconnect(ctx context.Context, service string) (*IntegrationState, error)

	DraftCoverEmail(ctx context.Context, jobID string) (*OutreachDraft, error)
	DraftWhatsAppMessage(ctx context.Context, jobID string) (*OutreachDraft, error)
	InterviewQuestions(ctx context.Context, jobID string) ([]InterviewQuestion, error)

	Stats(ctx context.Context) DashboardStats
	Toast(ctx context.Context) *Alert
}
