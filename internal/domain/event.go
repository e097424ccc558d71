package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	LocationCode string    `json:"location_code"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DateRange renders the event dates the way they appear in applicant emails,
// e.g. "15–17 Apr 2026", "28 Apr – 2 May 2026" or "30 Dec 2026 – 2 Jan 2027".
func (e Event) DateRange() string {
	return FormatDateRange(e.StartDate, e.EndDate)
}

func FormatDateRange(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return start.Format("2 Jan 2006") + " – " + end.Format("2 Jan 2006")
	case start.Month() != end.Month():
		return start.Format("2 Jan") + " – " + end.Format("2 Jan 2006")
	case start.Day() != end.Day():
		return start.Format("2") + "–" + end.Format("2 Jan 2006")
	default:
		return start.Format("2 Jan 2006")
	}
}
