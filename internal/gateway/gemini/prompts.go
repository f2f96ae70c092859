package gemini

import (
	"fmt"
	"strings"

	"linkgen-gcc-backend/internal/domain"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func analysisPrompt(job *domain.Job, profile *domain.UserProfile) string {
	return fmt.Sprintf(`Act as a professional recruiter specializing in the GCC market (Saudi Arabia, UAE). Analyze the fit between this candidate and this job.

Candidate:
Title: %s
Skills: %s
Arabic Proficiency: %s
Visa Status: %s

Job:
Title: %s
Company: %s
Location: %s
Visa Req: %s
Arabic Req: %t
Details: %s

Provide JSON.`,
		profile.Title, strings.Join(profile.Skills, ", "), deref(profile.ArabicProficiency), deref(profile.VisaStatus),
		job.Title, job.Company, job.Location, deref(job.VisaRequirements), job.ArabicRequired, job.Description)
}

func coverEmailPrompt(job *domain.Job, profile *domain.UserProfile) string {
	return fmt.Sprintf(`Write a professional email for a job application in the Middle East.
Candidate: %s (%s)
Job: %s at %s in %s.

Tone: Professional, respectful, and ambitious.
Return JSON {subject, body}.`,
		profile.Name, profile.Title, job.Title, job.Company, job.Location)
}

func whatsAppPrompt(job *domain.Job, profile *domain.UserProfile) string {
	return fmt.Sprintf(`Write a short, professional WhatsApp message to a recruiter in Dubai/Riyadh.
Start with "Salam" or "Hi".
Candidate: %s
Job: %s at %s
Context: Found via LinkGen App.
Tone: Professional but conversational, typical for WhatsApp business in GCC.
Max length: 250 characters.
Return strict text string.`,
		profile.Name, job.Title, job.Company)
}

func smartAlertsPrompt(jobs []domain.Job, profile *domain.UserProfile, integrations *domain.IntegrationState) string {
	var feed strings.Builder
	for i := range jobs {
		j := &jobs[i]
		fmt.Fprintf(&feed, "- id %s: %s at %s (%s, visa: %s)\n", j.ID, j.Title, j.Company, j.Location, deref(j.VisaRequirements))
	}

	return fmt.Sprintf(`You are a Recruiter Bot for the GCC market.
User: %s, Skills: %s, Location: %s.
Integrated: LinkedIn (%t), Gmail (%t).

Available jobs:
%s
Generate alerts for best matching jobs, referencing their ids.
If the job is in KSA and user has transferable Iqama/Citizen status, mark high priority.

Return JSON array of Alert objects including 'whatsappContent'.`,
		profile.Name, strings.Join(profile.Skills, ", "), deref(profile.Location),
		integrations.LinkedInConnected, integrations.GmailConnected, feed.String())
}

func interviewPrompt(job *domain.Job) string {
	return fmt.Sprintf("Generate interview questions for %s at %s (%s). Include technical and regional culture fit questions.",
		job.Title, job.Company, job.Location)
}
