package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/metrics"
	"github.com/chefskiss/festival-api/internal/repository"
)

type WorkshopRepository interface {
	Create(ctx context.Context, event domain.Event, app domain.WorkshopApplication, n *domain.Notification) (domain.WorkshopApplication, error)
	FindByID(ctx context.Context, id string) (domain.WorkshopApplication, error)
	FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, review repository.WorkshopReview) (domain.WorkshopApplication, error)
}

type WorkshopService struct {
	repo WorkshopRepository
}

func NewWorkshopService(repo WorkshopRepository) *WorkshopService {
	return &WorkshopService{
		repo: repo,
	}
}

func (s *WorkshopService) Submit(ctx context.Context, event *domain.Event, app domain.WorkshopApplication) (domain.WorkshopApplication, error) {
	if event == nil {
		return domain.WorkshopApplication{}, ErrNoActiveEvent
	}

	app.ID = ""
	app.Kind = domain.KindWorkshop
	app.Status = domain.StatusPending
	app.EventID = event.ID
	app.InstagramHandle = normalizeInstagram(app.InstagramHandle)

	done := metrics.TrackDBOperation("workshop_submit")
	created, err := s.repo.Create(ctx, *event, app, workshopConfirmation(app, time.Now()))
	done()
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	metrics.ApplicationsSubmitted.WithLabelValues(string(domain.KindWorkshop)).Inc()
	zap.L().Info("workshop application submitted",
		zap.String("application_id", created.ID),
		zap.String("event_id", event.ID.String()),
	)

	return created, nil
}

func (s *WorkshopService) GetApplication(ctx context.Context, id string) (domain.WorkshopApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return app, nil
}

func (s *WorkshopService) ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error) {
	done := metrics.TrackDBOperation("workshop_list")
	apps, err := s.repo.FindAll(ctx, eventID)
	done()
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return apps, nil
}

func (s *WorkshopService) UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.WorkshopApplication, error) {
	if !change.Status.Valid() {
		return domain.WorkshopApplication{}, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status)
	}

	review := func(before, after domain.WorkshopApplication) (*domain.Notification, error) {
		if err := domain.CheckTransition(before.Status, after.Status); err != nil {
			return nil, err
		}
		return workshopDecision(after, change.Reason), nil
	}

	updated, err := s.repo.UpdateStatus(ctx, change.ApplicationID, change.Status, review)
	if err != nil {
		return domain.WorkshopApplication{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	metrics.StatusChanges.WithLabelValues(string(domain.KindWorkshop), string(updated.Status)).Inc()
	zap.L().Info("workshop application reviewed",
		zap.String("application_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}

func normalizeInstagram(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" || strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}
