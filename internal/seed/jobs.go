// Package seed holds the static GCC job dataset used when no persisted
// snapshot exists.
package seed

import "linkgen-gcc-backend/internal/domain"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Jobs returns a fresh copy of the seed postings so callers can annotate
// them without mutating the seed.
func Jobs() []domain.Job {
	jobs := make([]domain.Job, len(seedJobs))
	copy(jobs, seedJobs)
	return jobs
}

// DefaultProfile is the initial user profile before any settings edits.
func DefaultProfile() domain.UserProfile {
	return domain.UserProfile{
		Name:              "Ahmed Al-Salem",
		Title:             "Senior Frontend Engineer",
		Bio:               "Passionate React developer based in Riyadh with 6 years of experience. Contributing to Vision 2030 digital transformation projects.",
		Skills:            []string{"React", "TypeScript", "Tailwind CSS", "Node.js", "Arabic (Native)"},
		TargetRoles:       []string{"Frontend Engineer", "Tech Lead"},
		Email:             strPtr("ahmed.dev@example.com"),
		Phone:             strPtr("+966 55 123 4567"),
		ProfileStrength:   intPtr(domain.ProfileStrengthBase),
		Location:          strPtr("Riyadh, Saudi Arabia"),
		ArabicProficiency: strPtr("Native"),
		VisaStatus:        strPtr("Citizen"),
	}
}

// DefaultPreferences is the initial notification and filter configuration.
func DefaultPreferences() domain.UserPreferences {
	return domain.UserPreferences{
		NotificationFrequency: "realtime",
		MinSalary:             "",
		RemoteOnly:            false,
		NotificationsEnabled:  true,
		EmailAlertsEnabled:    true,
		WhatsAppAlertsEnabled: false,
	}
}

var seedJobs = []domain.Job{
	{
		ID:               "101",
		Title:            "Lead Cognitive Solutions Architect",
		Company:          "NEOM",
		Location:         "Tabuk, Saudi Arabia (On-site)",
		PostedAt:         "4 hours ago",
		Type:             "On-site",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=NEOM&background=c5a365&color=fff",
		Salary:           strPtr("45k - 60k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(412),
		AlumniCount:      intPtr(3),
		IsPromoted:       true,
		VisaRequirements: strPtr("Open to All"),
		ArabicRequired:   false,
		Description: `THE ROLE:
    As a Cognitive Solutions Architect at NEOM, you will define the technical architecture for the world's first cognitive city. You will work with massive datasets and IoT streams to build predictive city services.

    KEY RESPONSIBILITIES:
    - Design scalable microservices architectures for city-wide operating systems (NEOS).
    - Integrate large-scale AI models for predictive maintenance and energy optimization.
    - Collaborate with Tonomus and other NEOM sectors.

    REQUIREMENTS:
    - 10+ years in Software Architecture or System Design.
    - Experience with Smart City frameworks or massive-scale IoT.
    - Deep knowledge of Cloud Native technologies (Kubernetes, Kafka).
    - Relocation to NEOM Community 1 is required (Housing provided).`,
	},
	{
		ID:               "102",
		Title:            "Cybersecurity Defense Analyst",
		Company:          "Aramco Digital",
		Location:         "Dhahran, Saudi Arabia",
		PostedAt:         "1 hour ago",
		Type:             "On-site",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=Aramco&background=0072ce&color=fff",
		Salary:           strPtr("30k - 38k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(128),
		AlumniCount:      intPtr(15),
		VisaRequirements: strPtr("Saudi National"),
		ArabicRequired:   true,
		Description: `Join Aramco Digital to protect critical energy infrastructure.

    Overview:
    We are seeking a highly skilled Cybersecurity Analyst to monitor, detect, and respond to cyber threats targeting industrial control systems (ICS) and corporate networks.

    Duties:
    - Monitor SIEM dashboards for suspicious activities.
    - Conduct vulnerability assessments and penetration testing.
    - Incident Response (IR) planning and execution.

    Qualifications:
    - Bachelor's in Cybersecurity or Computer Science.
    - CISSP, CEH, or GSEC certification is mandatory.
    - Must be a Saudi National.`,
	},
	{
		ID:               "103",
		Title:            "Senior Backend Engineer (Golang)",
		Company:          "HungerStation | Delivery Hero",
		Location:         "Riyadh, Saudi Arabia",
		PostedAt:         "2 days ago",
		Type:             "Hybrid",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=Hunger&background=ffcc00&color=000",
		Salary:           strPtr("25k - 32k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(890),
		VisaRequirements: strPtr("Iqama Transferable"),
		ArabicRequired:   false,
		Description: `HungerStation is the leading food delivery app in the Kingdom. We are scaling our logistics engine to handle millions of daily orders.

    What you'll do:
    - Write high-performance Go code for our dispatching algorithms.
    - Optimize gRPC communication between microservices.
    - Handle database scaling (PostgreSQL/Redis).

    Who you are:
    - 5+ years of backend experience (at least 2 years with Go).
    - Experience in high-concurrency environments.
    - Iqama transfer available for candidates currently in KSA.`,
	},
	{
		ID:               "104",
		Title:            "Product Manager - Fintech",
		Company:          "stc pay",
		Location:         "Riyadh, Saudi Arabia",
		PostedAt:         "5 hours ago",
		Type:             "On-site",
		Source:           domain.JobSourceGmailScan,
		LogoURL:          "https://ui-avatars.com/api/?name=stc+pay&background=4f008c&color=fff",
		Salary:           strPtr("35k - 45k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(34),
		VisaRequirements: strPtr("Open to All"),
		ArabicRequired:   true,
		Description: `(Detected via Gmail Thread with Recruiter: Sarah Al-Otaibi)

    We are looking for a Product Manager to lead our International Remittance vertical.

    Responsibilities:
    - Define the roadmap for cross-border payments.
    - Work with SAMA sandbox regulations.
    - Improve UX for the remittance flow.

    Requirements:
    - 4+ years in Product Management within Fintech.
    - Fluent in Arabic and English.
    - Understanding of ISO 20022 messaging standards.`,
	},
	{
		ID:               "105",
		Title:            "Staff Software Engineer",
		Company:          "Careem",
		Location:         "Dubai, UAE",
		PostedAt:         "12 hours ago",
		Type:             "Remote",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=Careem&background=47c95b&color=fff",
		Salary:           strPtr("30k - 40k"),
		Currency:         strPtr("AED"),
		ApplicantsCount:  intPtr(1200),
		VisaRequirements: strPtr("Open to All"),
		ArabicRequired:   false,
		Description: `Careem is the Everything App for the greater Middle East.

    We are looking for a Staff Engineer to drive technical strategy for the Super App Platform.
    - Architect systems that support Ride-hailing, Food, and Pay.
    - Mentor Senior Engineers.
    - Drive adoption of best practices (CI/CD, TDD).

    This role is Remote-first, but you must be based within +/- 2 hours of UAE time zone.`,
	},
	{
		ID:               "106",
		Title:            "Data Scientist (LLM Specialist)",
		Company:          "SDAIA (Saudi Data & AI Authority)",
		Location:         "Riyadh, Saudi Arabia",
		PostedAt:         "3 hours ago",
		Type:             "On-site",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=SDAIA&background=006c35&color=fff",
		Salary:           strPtr("28k - 36k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(56),
		VisaRequirements: strPtr("Saudi National"),
		ArabicRequired:   true,
		Description: `Contribute to the development of 'ALLaM' and other Arabic-centric Large Language Models.

    - Fine-tune open source models (Llama 3, Falcon) on Arabic datasets.
    - Optimize inference pipelines for low latency.
    - Publish research papers in top-tier conferences.

    Must have M.Sc or PhD in Computer Science/AI.`,
	},
	{
		ID:               "107",
		Title:            "Digital Marketing Manager",
		Company:          "Riyadh Season",
		Location:         "Riyadh, Saudi Arabia",
		PostedAt:         "6 hours ago",
		Type:             "On-site",
		Source:           domain.JobSourceLinkedIn,
		LogoURL:          "https://ui-avatars.com/api/?name=Riyadh&background=8a2be2&color=fff",
		Salary:           strPtr("22k - 28k"),
		Currency:         strPtr("SAR"),
		ApplicantsCount:  intPtr(405),
		VisaRequirements: strPtr("Open to All"),
		ArabicRequired:   true,
		Description: `Lead the digital presence for the world's largest entertainment event.

    - Manage multi-million riyal ad budgets across TikTok, Snapchat, and Twitter.
    - Coordinate with influencers and content creators.
    - Analyze campaign performance and ROI.

    Requires deep understanding of Saudi youth culture and trends.`,
	},
}
