package response

import "github.com/chefskiss/festival-api/internal/domain"

type SubmitResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}

// DashboardResponse carries a message instead of stats when no event is active.
type DashboardResponse struct {
	domain.DashboardStats
	Message string `json:"message,omitempty"`
}
