package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository/dao"
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindActive(ctx context.Context) (dao.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	Activate(ctx context.Context, id uuid.UUID) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// FindActive returns nil when no event is active.
func (r *EventRepository) FindActive(ctx context.Context) (*domain.Event, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		if errors.Is(err, dao.ErrEventNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	event := eventDaoToDomain(found)

	return &event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = eventDaoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *EventRepository) Activate(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	activated, err := r.dao.Activate(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Activate -> %w", err)
	}

	return eventDaoToDomain(activated), nil
}

func eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:           e.ID,
		Name:         e.Name,
		Location:     e.Location,
		LocationCode: e.LocationCode,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}

func eventDomainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:           e.ID,
		Name:         e.Name,
		Location:     e.Location,
		LocationCode: e.LocationCode,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		IsActive:     e.IsActive,
	}
}

func eventPtrDaoToDomain(e *dao.Event) *domain.Event {
	if e == nil {
		return nil
	}
	event := eventDaoToDomain(*e)
	return &event
}
