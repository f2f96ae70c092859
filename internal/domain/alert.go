package domain

// Alert types
const (
	AlertTypeHighMatch  = "HIGH_MATCH"
	AlertTypeNewPost    = "NEW_POST"
	AlertTypeSmartMatch = "SMART_MATCH"
	AlertTypeSystem     = "SYSTEM"
)

// Alert source contexts
const (
	AlertSourceLinkedIn = "LinkedIn"
	AlertSourceGmail    = "Gmail"
	AlertSourceLearning = "Learning"
)

// Alert priorities
const (
	AlertPriorityHigh   = "high"
	AlertPriorityNormal = "normal"
)

// EmailContent is a ready-to-send email draft attached to an alert.
type EmailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Alert is a notification shown in the alert list. SMART_MATCH alerts may
// carry outreach drafts produced by the generator; the assistant stamps
// ID, Timestamp and Read on those since the generator is not trusted to.
type Alert struct {
	ID              string        `json:"id"`
	JobID           *string       `json:"job_id,omitempty"`
	Title           string        `json:"title"`
	Message         string        `json:"message"`
	Timestamp       int64         `json:"timestamp"`
	Read            bool          `json:"read"`
	Type            string        `json:"type"`
	SourceContext   *string       `json:"source_context,omitempty"`
	Priority        *string       `json:"priority,omitempty"`
	EmailedToUser   bool          `json:"emailed_to_user,omitempty"`
	EmailContent    *EmailContent `json:"email_content,omitempty"`
	WhatsAppContent *string       `json:"whatsapp_content,omitempty"`
}

// IsHighPriority reports whether the alert carries the high priority flag.
func (a *Alert) IsHighPriority() bool {
	return a.Priority != nil && *a.Priority == AlertPriorityHigh
}

// dedupKey collapses duplicate alerts: at most one alert per (job, type).
type dedupKey struct {
	jobID string
	typ   string
}

func (a *Alert) dedupKey() dedupKey {
	k := dedupKey{typ: a.Type}
	if a.JobID != nil {
		k.jobID = *a.JobID
	}
	return k
}

// MergeAlerts prepends a new batch onto the existing list and drops
// duplicates by (jobID, type), keeping the first occurrence. Because the
// batch comes first, the newest copy always wins and the result stays
// newest-first.
func MergeAlerts(batch, existing []Alert) []Alert {
	combined := make([]Alert, 0, len(batch)+len(existing))
	combined = append(combined, batch...)
	combined = append(combined, existing...)

	seen := make(map[dedupKey]bool, len(combined))
	merged := combined[:0]
	for i := range combined {
		key := combined[i].dedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, combined[i])
	}
	return merged
}
