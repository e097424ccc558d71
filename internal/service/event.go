package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/domain"
)

type EventRepository interface {
	FindActive(ctx context.Context) (*domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Activate(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// GetActive returns nil when applications are closed.
func (s *EventService) GetActive(ctx context.Context) (*domain.Event, error) {
	event, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.LocationCode = strings.ToUpper(event.LocationCode)

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("event created",
		zap.String("event_id", created.ID.String()),
		zap.Bool("active", created.IsActive),
	)

	return created, nil
}

func (s *EventService) ActivateEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.repo.Activate(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Activate -> %w", err)
	}

	zap.L().Info("event activated", zap.String("event_id", event.ID.String()))

	return event, nil
}
