package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/chefskiss/festival-api/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateEventRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	LocationCode string `json:"location_code"`
	StartDate    string `json:"start_date" format:"YYYY-MM-DD"`
	EndDate      string `json:"end_date" format:"YYYY-MM-DD"`
	Activate     bool   `json:"activate"`
}

func (r *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.LocationCode, validation.Required, is.Alpha),
		validation.Field(&r.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(dateLayout)),
	)
	if err != nil {
		return err
	}

	if n := len(r.LocationCode); n < 2 || n > 5 {
		return errLocationCodeLen
	}

	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	if end.Before(start) {
		return errEndBeforeStart
	}

	return nil
}

func (r *CreateEventRequest) ToDomain() domain.Event {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)

	return domain.Event{
		Name:         r.Name,
		Location:     r.Location,
		LocationCode: r.LocationCode,
		StartDate:    start,
		EndDate:      end,
		IsActive:     r.Activate,
	}
}
