package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/notify"
	"github.com/chefskiss/festival-api/internal/repository"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) FindActive(ctx context.Context) (*domain.Event, error) {
	args := m.Called(ctx)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) Activate(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockVendorRepo struct {
	mock.Mock
}

func (m *mockVendorRepo) Create(ctx context.Context, event domain.Event, app domain.VendorApplication, n *domain.Notification) (domain.VendorApplication, error) {
	args := m.Called(ctx, event, app, n)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

func (m *mockVendorRepo) FindByID(ctx context.Context, id string) (domain.VendorApplication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

func (m *mockVendorRepo) FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.VendorApplication), args.Error(1)
}

func (m *mockVendorRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, review repository.VendorReview) (domain.VendorApplication, error) {
	args := m.Called(ctx, id, status, review)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

type mockWorkshopRepo struct {
	mock.Mock
}

func (m *mockWorkshopRepo) Create(ctx context.Context, event domain.Event, app domain.WorkshopApplication, n *domain.Notification) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, event, app, n)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopRepo) FindByID(ctx context.Context, id string) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopRepo) FindAll(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, review repository.WorkshopReview) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, id, status, review)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) CountByStatus(ctx context.Context, eventID uuid.UUID) (domain.StatusCounts, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

type mockOutboxRepo struct {
	mock.Mock
}

func (m *mockOutboxRepo) Claim(ctx context.Context, limit int, lease time.Duration) ([]domain.QueuedNotification, error) {
	args := m.Called(ctx, limit, lease)
	return args.Get(0).([]domain.QueuedNotification), args.Error(1)
}

func (m *mockOutboxRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error {
	return m.Called(ctx, id, reason, retryAt).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, msg notify.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:           uuid.MustParse("0b6f8f2e-4a7c-4c1e-9a59-6f1f3f8f3c11"),
		Name:         "Chef's Kiss Festival",
		Location:     "Kyiv",
		LocationCode: "KYV",
		StartDate:    time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.April, 17, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}
