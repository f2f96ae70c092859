package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/internal/seed"
	"linkgen-gcc-backend/pkg/apperror"
	"linkgen-gcc-backend/pkg/deeplink"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Recipient placeholder for cover-email deep links; the postings carry no
// contact address.
const coverEmailRecipient = "hiring-manager@company.com"

// Options holds the timing and cadence knobs of the state container.
// Zero durations disable the corresponding timer, which keeps tests
// deterministic.
type Options struct {
	IntegrationSyncDelay time.Duration
	WhatsAppEchoDelay    time.Duration
	ToastTTL             time.Duration
	SmartToastTTL        time.Duration
	WhatsAppToastTTL     time.Duration

	// A smart-alert refresh fires whenever the saved set grows to a
	// positive multiple of this interval.
	SmartAlertSaveInterval int
}

type assistantUsecase struct {
	store    domain.StateStore
	gateway  domain.AIGateway
	validate *validator.Validate
	opts     Options

	mu          sync.Mutex
	jobs        []domain.Job
	history     domain.InteractionHistory
	integration domain.IntegrationState
	profile     domain.UserProfile
	preferences domain.UserPreferences
	alerts      []domain.Alert

	// Analysis cache; kept in memory only, like the original. Overwritten
	// on re-analysis, never evicted.
	analyses map[string]*domain.AnalysisReport

	selectedJobID   *string
	analyzing       bool
	generatingSmart atomic.Bool
	toast           *domain.Alert
	toastSeq        uint64
}

// NewAssistantUsecase loads the persisted snapshot (seed defaults when
// missing or malformed) and returns the single state owner. All mutations
// are serialized behind one mutex; gateway calls run outside it.
func NewAssistantUsecase(ctx context.Context, store domain.StateStore, gateway domain.AIGateway, validate *validator.Validate, opts Options) (domain.AssistantUsecase, error) {
	if opts.SmartAlertSaveInterval <= 0 {
		opts.SmartAlertSaveInterval = 2
	}

	u := &assistantUsecase{
		store:       store,
		gateway:     gateway,
		validate:    validate,
		opts:        opts,
		jobs:        seed.Jobs(),
		history:     domain.InteractionHistory{SavedJobIDs: []string{}, DismissedJobIDs: []string{}, ViewedJobIDs: []string{}, LastInteraction: nowMillis()},
		integration: domain.IntegrationState{},
		profile:     seed.DefaultProfile(),
		preferences: seed.DefaultPreferences(),
		alerts:      []domain.Alert{},
		analyses:    make(map[string]*domain.AnalysisReport),
	}

	snap, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if snap != nil {
		// Each field present in the stored document overwrites its default.
		if len(snap.Jobs) > 0 {
			u.jobs = snap.Jobs
		}
		if snap.History != nil {
			u.history = *snap.History
		}
		if snap.Integration != nil {
			u.integration = *snap.Integration
		}
		if snap.Profile != nil {
			u.profile = *snap.Profile
		}
		if snap.Alerts != nil {
			u.alerts = snap.Alerts
		}
		if snap.Preferences != nil {
			u.preferences = *snap.Preferences
		}
	}

	return u, nil
}

func nowMillis() int64 { return time.Now().UnixMilli() }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// persistLocked snapshots the watched state and overwrites the stored blob.
// Must be called with the mutex held. Save failures are logged, never
// surfaced: there is no remote source of truth to reconcile against.
func (u *assistantUsecase) persistLocked(ctx context.Context) {
	snap := &domain.AppSnapshot{
		Jobs:        append([]domain.Job(nil), u.jobs...),
		History:     cloneHistory(&u.history),
		Integration: cloneIntegration(&u.integration),
		Profile:     cloneProfile(&u.profile),
		Alerts:      append([]domain.Alert(nil), u.alerts...),
		Preferences: clonePreferences(&u.preferences),
	}
	if err := u.store.Save(ctx, snap); err != nil {
		logger.Log.Error("Failed to persist state", "error", err)
	}
}

func cloneHistory(h *domain.InteractionHistory) *domain.InteractionHistory {
	c := *h
	c.SavedJobIDs = append([]string(nil), h.SavedJobIDs...)
	c.DismissedJobIDs = append([]string(nil), h.DismissedJobIDs...)
	c.ViewedJobIDs = append([]string(nil), h.ViewedJobIDs...)
	return &c
}

func cloneIntegration(s *domain.IntegrationState) *domain.IntegrationState {
	c := *s
	if s.SyncedDataSummary != nil {
		sum := *s.SyncedDataSummary
		c.SyncedDataSummary = &sum
	}
	return &c
}

func cloneProfile(p *domain.UserProfile) *domain.UserProfile {
	c := *p
	c.Skills = append([]string(nil), p.Skills...)
	c.TargetRoles = append([]string(nil), p.TargetRoles...)
	return &c
}

func clonePreferences(p *domain.UserPreferences) *domain.UserPreferences {
	c := *p
	return &c
}

func (u *assistantUsecase) findJobLocked(jobID string) *domain.Job {
	for i := range u.jobs {
		if u.jobs[i].ID == jobID {
			return &u.jobs[i]
		}
	}
	return nil
}

// ============================================================================
// Feed
// ============================================================================

func (u *assistantUsecase) VisibleJobs(_ context.Context) []domain.Job {
	u.mu.Lock()
	defer u.mu.Unlock()

	visible := make([]domain.Job, 0, len(u.jobs))
	for _, j := range u.jobs {
		if !u.history.IsDismissed(j.ID) {
			visible = append(visible, j)
		}
	}
	return visible
}

func (u *assistantUsecase) AppliedJobs(_ context.Context) []domain.Job {
	u.mu.Lock()
	defer u.mu.Unlock()

	applied := make([]domain.Job, 0)
	for _, j := range u.jobs {
		if j.Applied && !u.history.IsDismissed(j.ID) {
			applied = append(applied, j)
		}
	}
	return applied
}

func (u *assistantUsecase) JobDetail(_ context.Context, jobID string) (*domain.JobDetail, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	job := u.findJobLocked(jobID)
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}

	j := *job
	detail := &domain.JobDetail{
		Job:   &j,
		Saved: u.history.IsSaved(jobID),
	}
	if report, ok := u.analyses[jobID]; ok {
		r := *report
		detail.Analysis = &r
	}
	return detail, nil
}

func (u *assistantUsecase) SelectJob(ctx context.Context, jobID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.findJobLocked(jobID) == nil {
		return apperror.NotFound("Job not found")
	}
	u.selectedJobID = &jobID
	u.history.MarkViewed(jobID)
	u.history.LastInteraction = nowMillis()
	u.persistLocked(ctx)
	return nil
}

// ============================================================================
// Analyze
// ============================================================================

// Analyze runs even if a prior analysis exists; re-invoking replaces the
// cached result.
func (u *assistantUsecase) Analyze(ctx context.Context, jobID string) (*domain.AnalysisReport, error) {
	u.mu.Lock()
	job := u.findJobLocked(jobID)
	if job == nil {
		u.mu.Unlock()
		return nil, apperror.NotFound("Job not found")
	}
	u.analyzing = true
	u.selectedJobID = &jobID
	jobCopy := *job
	profileCopy := *cloneProfile(&u.profile)
	u.mu.Unlock()

	report := u.gateway.AnalyzeJobMatch(ctx, &jobCopy, &profileCopy)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.analyzing = false

	u.analyses[jobID] = report
	if job := u.findJobLocked(jobID); job != nil {
		job.Analyzed = true
		job.MatchScore = intPtr(report.MatchScore)
	}

	if report.MatchScore >= 85 && u.preferences.NotificationsEnabled {
		alert := domain.Alert{
			ID:            uuid.NewString(),
			JobID:         strPtr(jobID),
			Title:         "Perfect Match",
			Message:       fmt.Sprintf("%d%% match for %s.", report.MatchScore, jobCopy.Title),
			Timestamp:     nowMillis(),
			Read:          false,
			Type:          domain.AlertTypeHighMatch,
			SourceContext: strPtr(domain.AlertSourceLearning),
			Priority:      strPtr(domain.AlertPriorityHigh),
		}
		u.alerts = append([]domain.Alert{alert}, u.alerts...)
		u.setToastLocked(alert, u.opts.ToastTTL)
	}

	u.persistLocked(ctx)
	result := *report
	return &result, nil
}

// ============================================================================
// Save / Dismiss
// ============================================================================

func (u *assistantUsecase) ToggleSave(ctx context.Context, jobID string) (bool, error) {
	u.mu.Lock()
	if u.findJobLocked(jobID) == nil {
		u.mu.Unlock()
		return false, apperror.NotFound("Job not found")
	}

	saved := u.history.ToggleSave(jobID)
	u.history.LastInteraction = nowMillis()

	// Engagement cadence: refresh smart alerts every Nth save.
	count := len(u.history.SavedJobIDs)
	refresh := saved && count > 0 && count%u.opts.SmartAlertSaveInterval == 0

	u.persistLocked(ctx)
	u.mu.Unlock()

	if refresh {
		u.TriggerSmartAlerts(ctx)
	}
	return saved, nil
}

func (u *assistantUsecase) Dismiss(ctx context.Context, jobID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.findJobLocked(jobID) == nil {
		return apperror.NotFound("Job not found")
	}

	u.history.Dismiss(jobID)
	u.history.LastInteraction = nowMillis()
	if u.selectedJobID != nil && *u.selectedJobID == jobID {
		u.selectedJobID = nil
	}
	u.persistLocked(ctx)
	return nil
}

// ============================================================================
// Smart alerts
// ============================================================================

// TriggerSmartAlerts refreshes the proactive alert list. A call arriving
// while one is in flight is dropped, not queued.
func (u *assistantUsecase) TriggerSmartAlerts(ctx context.Context) bool {
	if !u.generatingSmart.CompareAndSwap(false, true) {
		return false
	}
	defer u.generatingSmart.Store(false)

	u.mu.Lock()
	available := make([]domain.Job, 0, len(u.jobs))
	for _, j := range u.jobs {
		if !u.history.IsDismissed(j.ID) {
			available = append(available, j)
		}
	}
	profileCopy := *cloneProfile(&u.profile)
	historyCopy := *cloneHistory(&u.history)
	integrationCopy := *cloneIntegration(&u.integration)
	u.mu.Unlock()

	batch := u.gateway.GenerateSmartAlerts(ctx, available, &profileCopy, &historyCopy, &integrationCopy)

	stamped := make([]domain.Alert, 0, len(batch.Drafts))
	now := nowMillis()
	for _, d := range batch.Drafts {
		stamped = append(stamped, domain.Alert{
			ID:              uuid.NewString(),
			JobID:           d.JobID,
			Title:           d.Title,
			Message:         d.Message,
			Timestamp:       now,
			Read:            false,
			Type:            d.Type,
			SourceContext:   d.SourceContext,
			Priority:        d.Priority,
			EmailedToUser:   true,
			EmailContent:    d.EmailContent,
			WhatsAppContent: d.WhatsAppContent,
		})
	}

	var echoContent *string

	u.mu.Lock()
	u.alerts = domain.MergeAlerts(stamped, u.alerts)

	for i := range stamped {
		if stamped[i].JobID == nil {
			continue
		}
		if job := u.findJobLocked(*stamped[i].JobID); job != nil {
			job.SmartMatchReason = strPtr(stamped[i].Title)
		}
	}

	for i := range stamped {
		if !stamped[i].IsHighPriority() {
			continue
		}
		if u.preferences.NotificationsEnabled {
			u.setToastLocked(stamped[i], u.opts.SmartToastTTL)
		}
		if u.preferences.WhatsAppAlertsEnabled && stamped[i].WhatsAppContent != nil {
			echoContent = stamped[i].WhatsAppContent
		}
		break
	}

	u.persistLocked(ctx)
	u.mu.Unlock()

	if echoContent != nil {
		// The echo fires after the request has finished, so it must not
		// persist with the caller's request-scoped context.
		u.scheduleAfter(u.opts.WhatsAppEchoDelay, func() {
			u.appendWhatsAppEcho(context.Background(), *echoContent)
		})
	}
	return true
}

// appendWhatsAppEcho records the synthetic "sent" confirmation that follows
// a high-priority alert carrying WhatsApp content.
func (u *assistantUsecase) appendWhatsAppEcho(ctx context.Context, content string) {
	// Truncate by characters, not bytes, so Arabic content keeps a valid
	// preview.
	preview := content
	if runes := []rune(preview); len(runes) > 40 {
		preview = string(runes[:40])
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	alert := domain.Alert{
		ID:            "wa-" + uuid.NewString(),
		Title:         "WhatsApp Alert Sent",
		Message:       fmt.Sprintf("Sent to +966...: %q...", preview),
		Timestamp:     nowMillis(),
		Read:          true,
		Type:          domain.AlertTypeSystem,
		SourceContext: strPtr(domain.AlertSourceLearning),
	}
	u.alerts = append([]domain.Alert{alert}, u.alerts...)
	u.setToastLocked(alert, u.opts.WhatsAppToastTTL)
	u.persistLocked(ctx)
}

func (u *assistantUsecase) scheduleAfter(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, fn)
}

// ============================================================================
// Applications
// ============================================================================

func (u *assistantUsecase) SubmitApplication(ctx context.Context, jobID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	job := u.findJobLocked(jobID)
	if job == nil {
		return apperror.NotFound("Job not found")
	}

	job.Applied = true
	now := nowMillis()
	job.ApplicationDate = &now
	job.ApplicationStatus = strPtr(domain.ApplicationStatusApplied)

	alert := domain.Alert{
		ID:            uuid.NewString(),
		JobID:         strPtr(jobID),
		Title:         "Application Sent!",
		Message:       "Good luck!",
		Timestamp:     now,
		Read:          false,
		Type:          domain.AlertTypeSystem,
		SourceContext: strPtr(domain.AlertSourceLinkedIn),
	}
	u.alerts = append([]domain.Alert{alert}, u.alerts...)
	u.setToastLocked(alert, u.opts.ToastTTL)

	u.persistLocked(ctx)
	return nil
}

// ============================================================================
// Alerts
// ============================================================================

func (u *assistantUsecase) Alerts(_ context.Context) []domain.Alert {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]domain.Alert(nil), u.alerts...)
}

func (u *assistantUsecase) MarkAllAlertsRead(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.alerts {
		u.alerts[i].Read = true
	}
	u.persistLocked(ctx)
}

// ============================================================================
// Profile / Preferences / Integrations
// ============================================================================

func (u *assistantUsecase) Profile(_ context.Context) domain.UserProfile {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *cloneProfile(&u.profile)
}

func (u *assistantUsecase) UpdateProfile(ctx context.Context, profile *domain.UserProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest("Validation failed: " + err.Error())
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Profile strength is derived from the LinkedIn connection, not edited.
	strength := domain.ProfileStrengthBase
	if u.integration.LinkedInConnected {
		strength = domain.ProfileStrengthConnected
	}
	profile.ProfileStrength = &strength

	u.profile = *profile
	u.persistLocked(ctx)
	return nil
}

func (u *assistantUsecase) Preferences(_ context.Context) domain.UserPreferences {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.preferences
}

func (u *assistantUsecase) UpdatePreferences(ctx context.Context, prefs *domain.UserPreferences) error {
	if err := u.validate.Struct(prefs); err != nil {
		return apperror.BadRequest("Validation failed: " + err.Error())
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.preferences = *prefs
	u.persistLocked(ctx)
	return nil
}

func (u *assistantUsecase) Integrations(_ context.Context) domain.IntegrationState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *cloneIntegration(&u.integration)
}

// Connect simulates an OAuth-style connection: a fixed sync delay, then the
// connected flag flips and a canned data summary lands. Any successful
// connection refreshes smart alerts.
func (u *assistantUsecase) Connect(ctx context.Context, service string) (*domain.IntegrationState, error) {
	if service != domain.ServiceLinkedIn && service != domain.ServiceGmail {
		return nil, apperror.BadRequest("Unknown integration service")
	}

	sleep(ctx, u.opts.IntegrationSyncDelay)

	u.mu.Lock()
	now := nowMillis()
	u.integration.LastSync = &now
	if u.integration.SyncedDataSummary == nil {
		u.integration.SyncedDataSummary = &domain.SyncedDataSummary{}
	}
	switch service {
	case domain.ServiceLinkedIn:
		u.integration.LinkedInConnected = true
		u.integration.SyncedDataSummary.LinkedIn = strPtr("Synced: 850 Connections, 5 Skills")
		u.profile.ProfileStrength = intPtr(domain.ProfileStrengthConnected)
	case domain.ServiceGmail:
		u.integration.GmailConnected = true
		u.integration.SyncedDataSummary.Gmail = strPtr("Synced: 2 recent recruiter threads")
	}
	state := *cloneIntegration(&u.integration)
	u.persistLocked(ctx)
	u.mu.Unlock()

	u.TriggerSmartAlerts(ctx)
	return &state, nil
}

func (u *assistantUsecase) Disconnect(ctx context.Context, service string) (*domain.IntegrationState, error) {
	if service != domain.ServiceLinkedIn && service != domain.ServiceGmail {
		return nil, apperror.BadRequest("Unknown integration service")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	switch service {
	case domain.ServiceLinkedIn:
		u.integration.LinkedInConnected = false
		u.profile.ProfileStrength = intPtr(domain.ProfileStrengthBase)
	case domain.ServiceGmail:
		u.integration.GmailConnected = false
	}
	state := *cloneIntegration(&u.integration)
	u.persistLocked(ctx)
	return &state, nil
}

// ============================================================================
// Outreach / Interview prep
// ============================================================================

func (u *assistantUsecase) DraftCoverEmail(ctx context.Context, jobID string) (*domain.OutreachDraft, error) {
	job, profile, err := u.snapshotJobAndProfile(jobID)
	if err != nil {
		return nil, err
	}

	draft, err := u.gateway.GenerateCoverEmail(ctx, job, profile)
	if err != nil {
		logger.Log.Error("Cover email generation failed", "job_id", jobID, "error", err)
		return nil, apperror.UnprocessableEntity("Failed to generate email")
	}

	return &domain.OutreachDraft{
		Subject:  draft.Subject,
		Body:     draft.Body,
		DeepLink: deeplink.Mailto(coverEmailRecipient, draft.Subject, draft.Body),
		Source:   draft.Source,
	}, nil
}

func (u *assistantUsecase) DraftWhatsAppMessage(ctx context.Context, jobID string) (*domain.OutreachDraft, error) {
	job, profile, err := u.snapshotJobAndProfile(jobID)
	if err != nil {
		return nil, err
	}

	draft := u.gateway.GenerateWhatsAppMessage(ctx, job, profile)
	return &domain.OutreachDraft{
		Body:     draft.Text,
		DeepLink: deeplink.WhatsApp(draft.Text),
		Source:   draft.Source,
	}, nil
}

func (u *assistantUsecase) InterviewQuestions(ctx context.Context, jobID string) ([]domain.InterviewQuestion, error) {
	job, _, err := u.snapshotJobAndProfile(jobID)
	if err != nil {
		return nil, err
	}

	set := u.gateway.GenerateInterviewQuestions(ctx, job)
	return set.Questions, nil
}

func (u *assistantUsecase) snapshotJobAndProfile(jobID string) (*domain.Job, *domain.UserProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	job := u.findJobLocked(jobID)
	if job == nil {
		return nil, nil, apperror.NotFound("Job not found")
	}
	j := *job
	return &j, cloneProfile(&u.profile), nil
}

// ============================================================================
// Dashboard / Toast
// ============================================================================

func (u *assistantUsecase) Stats(_ context.Context) domain.DashboardStats {
	u.mu.Lock()
	defer u.mu.Unlock()

	stats := domain.DashboardStats{SavedJobs: len(u.history.SavedJobIDs)}
	for _, a := range u.alerts {
		if a.Type == domain.AlertTypeSmartMatch {
			stats.SmartMatches++
		}
		if !a.Read {
			stats.UnreadAlerts++
		}
	}
	for _, j := range u.jobs {
		if j.Applied {
			stats.Applications++
		}
	}
	return stats
}

func (u *assistantUsecase) Toast(_ context.Context) *domain.Alert {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.toast == nil {
		return nil
	}
	t := *u.toast
	return &t
}

// setToastLocked replaces the transient toast and schedules its self
// dismissal. A later toast invalidates the earlier timer via the sequence
// counter. A zero TTL disables auto-dismiss.
func (u *assistantUsecase) setToastLocked(alert domain.Alert, ttl time.Duration) {
	u.toast = &alert
	u.toastSeq++
	seq := u.toastSeq
	if ttl <= 0 {
		return
	}
	time.AfterFunc(ttl, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.toastSeq == seq {
			u.toast = nil
		}
	})
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
