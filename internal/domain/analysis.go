package domain

// ResultSource distinguishes a live model response from the canned offline
// fallback, which would otherwise be indistinguishable to callers.
type ResultSource string

const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

// AnalysisResult is the AI verdict for one candidate/job pairing.
type AnalysisResult struct {
	MatchScore    int      `json:"match_score"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	MissingSkills []string `json:"missing_skills"`
	Verdict       string   `json:"verdict"`
	CultureFit    *string  `json:"culture_fit,omitempty"`
}

// AnalysisReport is the cached entry in the per-job analysis map: the
// result plus where it came from. Overwritten on re-analysis, never evicted.
type AnalysisReport struct {
	AnalysisResult
	Source ResultSource `json:"source"`
}

// InterviewQuestion is one coached question for the prep session. Held only
// for the open session, never persisted.
type InterviewQuestion struct {
	Question string `json:"question"`
	Type     string `json:"type"` // Behavioral or Technical
	AITip    string `json:"ai_tip"`
}

// OutreachDraft is generated outreach content plus the deep link that opens
// it in the external app (mailto: or wa.me). Fire-and-forget; delivery is
// never confirmed.
type OutreachDraft struct {
	Subject  string       `json:"subject,omitempty"`
	Body     string       `json:"body"`
	DeepLink string       `json:"deep_link"`
	Source   ResultSource `json:"source"`
}
