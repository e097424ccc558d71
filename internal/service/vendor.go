package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/metrics"
	"github.com/chefskiss/festival-api/internal/repository"
)

type VendorRepository interface {
	Create(ctx context.Context, event domain.Event, app domain.VendorApplication, n *domain.Notification) (domain.VendorApplication, error)
	FindByID(ctx context.Context, id string) (domain.VendorApplication, error)
	FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, review repository.VendorReview) (domain.VendorApplication, error)
}

type VendorService struct {
	repo VendorRepository
}

func NewVendorService(repo VendorRepository) *VendorService {
	return &VendorService{
		repo: repo,
	}
}

// Submit stores a new vendor application under event and queues its
// confirmation. A nil event means applications are closed.
func (s *VendorService) Submit(ctx context.Context, event *domain.Event, app domain.VendorApplication) (domain.VendorApplication, error) {
	if event == nil {
		return domain.VendorApplication{}, ErrNoActiveEvent
	}

	app.ID = ""
	app.Kind = domain.KindVendor
	app.Status = domain.StatusPending
	app.EventID = event.ID

	done := metrics.TrackDBOperation("vendor_submit")
	created, err := s.repo.Create(ctx, *event, app, vendorConfirmation(app, time.Now()))
	done()
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	metrics.ApplicationsSubmitted.WithLabelValues(string(domain.KindVendor)).Inc()
	zap.L().Info("vendor application submitted",
		zap.String("application_id", created.ID),
		zap.String("event_id", event.ID.String()),
	)

	return created, nil
}

func (s *VendorService) GetApplication(ctx context.Context, id string) (domain.VendorApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return app, nil
}

// ListApplications returns applications newest first, scoped to eventID
// unless it is nil.
func (s *VendorService) ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error) {
	done := metrics.TrackDBOperation("vendor_list")
	apps, err := s.repo.FindAll(ctx, eventID)
	done()
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return apps, nil
}

// UpdateStatus applies a review decision and queues the matching
// acceptance or rejection notification with it.
func (s *VendorService) UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.VendorApplication, error) {
	if !change.Status.Valid() {
		return domain.VendorApplication{}, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status)
	}

	review := func(before, after domain.VendorApplication) (*domain.Notification, error) {
		if err := domain.CheckTransition(before.Status, after.Status); err != nil {
			return nil, err
		}
		return vendorDecision(after, change.Reason), nil
	}

	updated, err := s.repo.UpdateStatus(ctx, change.ApplicationID, change.Status, review)
	if err != nil {
		return domain.VendorApplication{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	metrics.StatusChanges.WithLabelValues(string(domain.KindVendor), string(updated.Status)).Inc()
	zap.L().Info("vendor application reviewed",
		zap.String("application_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}
