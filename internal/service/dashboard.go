package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/domain"
)

type StatusCounter interface {
	CountByStatus(ctx context.Context, eventID uuid.UUID) (domain.StatusCounts, error)
}

type DashboardService struct {
	events    EventRepository
	vendors   StatusCounter
	workshops StatusCounter
}

func NewDashboardService(events EventRepository, vendors, workshops StatusCounter) *DashboardService {
	return &DashboardService{
		events:    events,
		vendors:   vendors,
		workshops: workshops,
	}
}

// Stats counts applications per status for eventID, or for the active event
// when eventID is nil. With no active event both Event and Stats are nil.
// A failed count is reported as zeros and marks the result Partial; a failed
// active event lookup is reported as no event, also Partial.
func (s *DashboardService) Stats(ctx context.Context, eventID *uuid.UUID) (domain.DashboardStats, error) {
	var event *domain.Event
	if eventID != nil {
		found, err := s.events.FindByID(ctx, *eventID)
		if err != nil {
			return domain.DashboardStats{}, fmt.Errorf("s.events.FindByID -> %w", err)
		}
		event = &found
	} else {
		active, err := s.events.FindActive(ctx)
		if err != nil {
			zap.L().Warn("looking up active event failed", zap.Error(err))
			return domain.DashboardStats{Partial: true}, nil
		}
		event = active
	}

	if event == nil {
		return domain.DashboardStats{}, nil
	}

	result := domain.DashboardStats{
		Event: event,
		Stats: &domain.ApplicationStats{},
	}

	vendors, err := s.vendors.CountByStatus(ctx, event.ID)
	if err != nil {
		zap.L().Warn("counting vendor applications failed",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
		result.Partial = true
	} else {
		result.Stats.Vendors = vendors
	}

	workshops, err := s.workshops.CountByStatus(ctx, event.ID)
	if err != nil {
		zap.L().Warn("counting workshop applications failed",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
		result.Partial = true
	} else {
		result.Stats.Workshops = workshops
	}

	return result, nil
}
