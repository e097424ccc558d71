package domain

type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func (c *StatusCounts) Add(s Status, n int64) {
	switch s {
	case StatusPending:
		c.Pending += n
	case StatusApproved:
		c.Approved += n
	case StatusRejected:
		c.Rejected += n
	default:
		return
	}
	c.Total += n
}

type ApplicationStats struct {
	Vendors   StatusCounts `json:"vendors"`
	Workshops StatusCounts `json:"workshops"`
}

// DashboardStats is nil-event, nil-stats when there is no active event.
type DashboardStats struct {
	Event *Event            `json:"event"`
	Stats *ApplicationStats `json:"stats"`
	// Partial is set when a count could not be computed and zeros were reported instead.
	Partial bool `json:"partial,omitempty"`
}
