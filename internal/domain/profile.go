package domain

// Profile strength levels. Connecting LinkedIn unlocks the full score;
// disconnecting reverts it.
const (
	ProfileStrengthBase      = 60
	ProfileStrengthConnected = 100
)

// UserProfile is the single user's profile. Singleton; edited via settings
// and bumped as a side effect of connecting integrations.
type UserProfile struct {
	Name            string   `json:"name" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	TargetRoles     []string `json:"target_roles"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	ProfileStrength *int     `json:"profile_strength,omitempty"`

	// GCC specifics
	Location          *string `json:"location,omitempty"`
	ArabicProficiency *string `json:"arabic_proficiency,omitempty" validate:"omitempty,oneof=Native Fluent Intermediate None"`
	VisaStatus        *string `json:"visa_status,omitempty"`
}

// Integration service names
const (
	ServiceLinkedIn = "linkedin"
	ServiceGmail    = "gmail"
)

// SyncedDataSummary holds the per-service free-text sync summaries.
type SyncedDataSummary struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	Gmail    *string `json:"gmail,omitempty"`
}

// IntegrationState tracks the two simulated external connections.
type IntegrationState struct {
	LinkedInConnected bool               `json:"linkedin_connected"`
	GmailConnected    bool               `json:"gmail_connected"`
	LastSync          *int64             `json:"last_sync,omitempty"`
	SyncedDataSummary *SyncedDataSummary `json:"synced_data_summary,omitempty"`
}

// Connected reports whether the named service is connected.
func (s *IntegrationState) Connected(service string) bool {
	switch service {
	case ServiceLinkedIn:
		return s.LinkedInConnected
	case ServiceGmail:
		return s.GmailConnected
	}
	return false
}

// UserPreferences holds notification cadence, channel toggles and the
// salary filter. Edited directly via settings.
type UserPreferences struct {
	NotificationFrequency string `json:"notification_frequency" validate:"required,oneof=realtime daily weekly"`
	MinSalary             string `json:"min_salary"`
	RemoteOnly            bool   `json:"remote_only"`
	NotificationsEnabled  bool   `json:"notifications_enabled"`
	EmailAlertsEnabled    bool   `json:"email_alerts_enabled"`
	WhatsAppAlertsEnabled bool   `json:"whatsapp_alerts_enabled"`
}
