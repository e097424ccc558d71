package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/chefskiss/festival-api/internal/domain"
)

type UpdateStatusRequest struct {
	Status string `json:"status" enums:"pending,approved,rejected"`
	// Reason is sent to the applicant on rejection.
	Reason string `json:"reason"`
}

func (r *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Status, validation.Required, validation.In(
			string(domain.StatusPending),
			string(domain.StatusApproved),
			string(domain.StatusRejected),
		)),
		validation.Field(&r.Reason, validation.Length(0, 1000)),
	)
}

func (r *UpdateStatusRequest) ToDomain(applicationID string) domain.StatusChange {
	return domain.StatusChange{
		ApplicationID: applicationID,
		Status:        domain.Status(r.Status),
		Reason:        r.Reason,
	}
}
