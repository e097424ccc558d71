package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository/dao"
)

type WorkshopDAO interface {
	Insert(ctx context.Context, event dao.Event, app dao.WorkshopApplication, msg *dao.OutboxMessage) (dao.WorkshopApplication, error)
	FindByID(ctx context.Context, id string) (dao.WorkshopApplication, error)
	FindAll(ctx context.Context, eventID *uuid.UUID) ([]dao.WorkshopApplication, error)
	UpdateStatus(ctx context.Context, id, status string, hook dao.WorkshopStatusHook) (dao.WorkshopApplication, error)
	CountByStatus(ctx context.Context, eventID uuid.UUID) ([]dao.StatusCount, error)
}

type WorkshopReview func(before, after domain.WorkshopApplication) (*domain.Notification, error)

type WorkshopRepository struct {
	dao WorkshopDAO
}

func NewWorkshopRepository(dao WorkshopDAO) *WorkshopRepository {
	return &WorkshopRepository{
		dao: dao,
	}
}

func (r *WorkshopRepository) Create(ctx context.Context, event domain.Event, app domain.WorkshopApplication, n *domain.Notification) (domain.WorkshopApplication, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDao(event), workshopDomainToDao(app), notificationToOutbox(n))
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return workshopDaoToDomain(created), nil
}

func (r *WorkshopRepository) FindByID(ctx context.Context, id string) (domain.WorkshopApplication, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return workshopDaoToDomain(found), nil
}

func (r *WorkshopRepository) FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error) {
	found, err := r.dao.FindAll(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	apps := make([]domain.WorkshopApplication, len(found))
	for i, a := range found {
		apps[i] = workshopDaoToDomain(a)
	}

	return apps, nil
}

func (r *WorkshopRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, review WorkshopReview) (domain.WorkshopApplication, error) {
	hook := func(before, after dao.WorkshopApplication) (*dao.OutboxMessage, error) {
		n, err := review(workshopDaoToDomain(before), workshopDaoToDomain(after))
		if err != nil {
			return nil, err
		}
		return notificationToOutbox(n), nil
	}

	updated, err := r.dao.UpdateStatus(ctx, id, string(status), hook)
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return workshopDaoToDomain(updated), nil
}

func (r *WorkshopRepository) CountByStatus(ctx context.Context, eventID uuid.UUID) (domain.StatusCounts, error) {
	rows, err := r.dao.CountByStatus(ctx, eventID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	return statusCountsDaoToDomain(rows), nil
}

func workshopDaoToDomain(a dao.WorkshopApplication) domain.WorkshopApplication {
	return domain.WorkshopApplication{
		Envelope: domain.Envelope{
			ID:        a.ID,
			Kind:      domain.KindWorkshop,
			Status:    domain.Status(a.Status),
			EventID:   a.EventID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		ContactPerson:          a.ContactPerson,
		Email:                  a.Email,
		PhoneNumber:            a.PhoneNumber,
		InstagramHandle:        deref(a.InstagramHandle),
		WorkshopTitle:          a.WorkshopTitle,
		WorkshopDescription:    a.WorkshopDescription,
		SessionDuration:        a.SessionDuration,
		ParticipantsPerSession: a.ParticipantsPerSession,
		SessionsPerDay:         a.SessionsPerDay,
		MaterialsAndTools:      a.MaterialsAndTools,
		TargetAudience:         domain.TargetAudience(a.TargetAudience),
		PreferredParticipation: domain.Participation(a.PreferredParticipation),
		Event:                  eventPtrDaoToDomain(a.Event),
	}
}

func workshopDomainToDao(a domain.WorkshopApplication) dao.WorkshopApplication {
	return dao.WorkshopApplication{
		ID:                     a.ID,
		Status:                 string(a.Status),
		EventID:                a.EventID,
		ContactPerson:          a.ContactPerson,
		Email:                  a.Email,
		PhoneNumber:            a.PhoneNumber,
		InstagramHandle:        nullable(a.InstagramHandle),
		WorkshopTitle:          a.WorkshopTitle,
		WorkshopDescription:    a.WorkshopDescription,
		SessionDuration:        a.SessionDuration,
		ParticipantsPerSession: a.ParticipantsPerSession,
		SessionsPerDay:         a.SessionsPerDay,
		MaterialsAndTools:      a.MaterialsAndTools,
		TargetAudience:         string(a.TargetAudience),
		PreferredParticipation: string(a.PreferredParticipation),
	}
}
