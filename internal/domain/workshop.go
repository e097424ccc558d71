package domain

type TargetAudience string

const (
	AudienceAdults   TargetAudience = "adults"
	AudienceFamilies TargetAudience = "families"
	AudienceChildren TargetAudience = "children"
	AudienceCouples  TargetAudience = "couples"
	AudienceAll      TargetAudience = "all"
)

type Participation string

const (
	ParticipationOneDay  Participation = "one day"
	ParticipationTwoDays Participation = "two days"
)

type WorkshopApplication struct {
	Envelope

	ContactPerson   string `json:"contact_person"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	InstagramHandle string `json:"instagram_handle,omitempty"`

	WorkshopTitle       string `json:"workshop_title"`
	WorkshopDescription string `json:"workshop_description"`

	// SessionDuration is in minutes.
	SessionDuration        int `json:"session_duration"`
	ParticipantsPerSession int `json:"participants_per_session"`
	SessionsPerDay         int `json:"sessions_per_day"`

	MaterialsAndTools      string         `json:"materials_and_tools"`
	TargetAudience         TargetAudience `json:"target_audience"`
	PreferredParticipation Participation  `json:"preferred_participation"`

	Event *Event `json:"event,omitempty"`
}
