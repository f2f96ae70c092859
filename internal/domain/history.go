package domain

// InteractionHistory records which jobs the user saved, dismissed and
// viewed. A job may be saved and dismissed independently; dismissed IDs
// hide the job from every visible listing regardless of other flags.
type InteractionHistory struct {
	SavedJobIDs     []string `json:"saved_job_ids"`
	DismissedJobIDs []string `json:"dismissed_job_ids"`
	ViewedJobIDs    []string `json:"viewed_job_ids"`
	LastInteraction int64    `json:"last_interaction"`
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// IsSaved reports saved-set membership.
func (h *InteractionHistory) IsSaved(jobID string) bool {
	return containsID(h.SavedJobIDs, jobID)
}

// IsDismissed reports dismissed-set membership.
func (h *InteractionHistory) IsDismissed(jobID string) bool {
	return containsID(h.DismissedJobIDs, jobID)
}

// ToggleSave flips saved-set membership and reports the new state.
func (h *InteractionHistory) ToggleSave(jobID string) bool {
	if h.IsSaved(jobID) {
		h.SavedJobIDs = removeID(h.SavedJobIDs, jobID)
		return false
	}
	h.SavedJobIDs = append(h.SavedJobIDs, jobID)
	return true
}

// Dismiss adds the job to the dismissed set. Re-dismissing has no effect.
func (h *InteractionHistory) Dismiss(jobID string) {
	if !h.IsDismissed(jobID) {
		h.DismissedJobIDs = append(h.DismissedJobIDs, jobID)
	}
}

// MarkViewed adds the job to the viewed set. Set semantics.
func (h *InteractionHistory) MarkViewed(jobID string) {
	if !containsID(h.ViewedJobIDs, jobID) {
		h.ViewedJobIDs = append(h.ViewedJobIDs, jobID)
	}
}
