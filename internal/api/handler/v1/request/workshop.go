package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/chefskiss/festival-api/internal/domain"
)

type WorkshopApplicationRequest struct {
	ContactPerson   string `json:"contact_person"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	InstagramHandle string `json:"instagram_handle"`

	WorkshopTitle       string `json:"workshop_title"`
	WorkshopDescription string `json:"workshop_description"`

	SessionDuration        int `json:"session_duration"`
	ParticipantsPerSession int `json:"participants_per_session"`
	SessionsPerDay         int `json:"sessions_per_day"`

	MaterialsAndTools      string `json:"materials_and_tools"`
	TargetAudience         string `json:"target_audience" enums:"adults,families,children,couples,all"`
	PreferredParticipation string `json:"preferred_participation" enums:"one day,two days"`
}

func (r *WorkshopApplicationRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.ContactPerson, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.PhoneNumber, validation.Required, phoneRule),
		validation.Field(&r.InstagramHandle, validation.Length(0, 60)),
		validation.Field(&r.WorkshopTitle, validation.Required, validation.Length(2, 150)),
		validation.Field(&r.WorkshopDescription, validation.Required, validation.Length(10, 5000)),
		validation.Field(&r.SessionDuration, validation.Required, validation.Min(1)),
		validation.Field(&r.ParticipantsPerSession, validation.Required, validation.Min(1)),
		validation.Field(&r.SessionsPerDay, validation.Required, validation.Min(1)),
		validation.Field(&r.MaterialsAndTools, validation.Required, validation.Length(1, 2000)),
		validation.Field(&r.TargetAudience, validation.Required, validation.In(
			string(domain.AudienceAdults),
			string(domain.AudienceFamilies),
			string(domain.AudienceChildren),
			string(domain.AudienceCouples),
			string(domain.AudienceAll),
		)),
		validation.Field(&r.PreferredParticipation, validation.Required, validation.In(
			string(domain.ParticipationOneDay),
			string(domain.ParticipationTwoDays),
		)),
	)
}

func (r *WorkshopApplicationRequest) ToDomain() domain.WorkshopApplication {
	return domain.WorkshopApplication{
		ContactPerson:          r.ContactPerson,
		Email:                  r.Email,
		PhoneNumber:            r.PhoneNumber,
		InstagramHandle:        r.InstagramHandle,
		WorkshopTitle:          r.WorkshopTitle,
		WorkshopDescription:    r.WorkshopDescription,
		SessionDuration:        r.SessionDuration,
		ParticipantsPerSession: r.ParticipantsPerSession,
		SessionsPerDay:         r.SessionsPerDay,
		MaterialsAndTools:      r.MaterialsAndTools,
		TargetAudience:         domain.TargetAudience(r.TargetAudience),
		PreferredParticipation: domain.Participation(r.PreferredParticipation),
	}
}
