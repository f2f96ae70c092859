package gemini

import (
	"fmt"

	"linkgen-gcc-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

// fallbackAnalysis is the deterministic offline verdict.
func fallbackAnalysis() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		AnalysisResult: domain.AnalysisResult{
			MatchScore:    88,
			Pros:          []string{"Strong React experience matches core requirements", "Local experience in KSA market", "Arabic speaker (Native)"},
			Cons:          []string{"No prior Fintech experience"},
			MissingSkills: []string{"SAMA Regulations"},
			Verdict:       "Strong candidate. Local presence and language skills are a huge plus for this Riyadh role.",
			CultureFit:    strPtr("High. Your background matches the fast-paced transformation culture typical of Vision 2030 projects."),
		},
		Source: domain.SourceFallback,
	}
}

func fallbackCoverEmail(job *domain.Job, profile *domain.UserProfile) *domain.EmailDraft {
	location := "the region"
	if profile.Location != nil {
		location = *profile.Location
	}
	return &domain.EmailDraft{
		Subject: fmt.Sprintf("Application for %s - %s", job.Title, profile.Name),
		Body: fmt.Sprintf("Dear Hiring Manager,\n\nI am writing to express my interest in the %s position at %s. Based in %s, I admire %s's growth in the GCC.\n\nBest,\n%s",
			job.Title, job.Company, location, job.Company, profile.Name),
		Source: domain.SourceFallback,
	}
}

func fallbackWhatsApp(job *domain.Job, profile *domain.UserProfile) *domain.TextDraft {
	return &domain.TextDraft{
		Text: fmt.Sprintf("Salam, I hope you are doing well. I saw the %s role at %s and I believe my profile is a great match. Would love to connect. - %s",
			job.Title, job.Company, profile.Name),
		Source: domain.SourceFallback,
	}
}

func fallbackSmartAlerts() *domain.AlertBatch {
	return &domain.AlertBatch{
		Drafts: []domain.AlertDraft{
			{
				Title:         "Riyadh Role Match",
				Message:       "SABIC Digital is looking for React devs. Fits your profile perfectly.",
				Type:          domain.AlertTypeSmartMatch,
				SourceContext: strPtr(domain.AlertSourceLearning),
				Priority:      strPtr(domain.AlertPriorityHigh),
				EmailContent: &domain.EmailContent{
					Subject: "Job Match: SABIC Digital",
					Body:    "Found a great role in Riyadh matching your transferable Iqama status...",
				},
				WhatsAppContent: strPtr("Salam! found a high priority match at SABIC Riyadh for you."),
			},
		},
		Source: domain.SourceFallback,
	}
}

func fallbackInterviewQuestions() *domain.QuestionSet {
	return &domain.QuestionSet{
		Questions: []domain.InterviewQuestion{
			{Question: "How do you handle tight deadlines common in Vision 2030 projects?", Type: "Behavioral", AITip: "Emphasize agility."},
			{Question: "Describe your experience with React state management.", Type: "Technical", AITip: "Mention Redux or Context API."},
			{Question: "How do you approach localization (RTL) in frontend?", Type: "Technical", AITip: "Discuss CSS direction and i18n libraries."},
		},
		Source: domain.SourceFallback,
	}
}
