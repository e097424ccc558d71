package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/chefskiss/festival-api/internal/domain"
)

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) GetActive(ctx context.Context) (*domain.Event, error) {
	args := m.Called(ctx)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) ActivateEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockVendorService struct {
	mock.Mock
}

func (m *mockVendorService) Submit(ctx context.Context, event *domain.Event, app domain.VendorApplication) (domain.VendorApplication, error) {
	args := m.Called(ctx, event, app)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

func (m *mockVendorService) GetApplication(ctx context.Context, id string) (domain.VendorApplication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

func (m *mockVendorService) ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.VendorApplication), args.Error(1)
}

func (m *mockVendorService) UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.VendorApplication, error) {
	args := m.Called(ctx, change)
	return args.Get(0).(domain.VendorApplication), args.Error(1)
}

type mockWorkshopService struct {
	mock.Mock
}

func (m *mockWorkshopService) Submit(ctx context.Context, event *domain.Event, app domain.WorkshopApplication) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, event, app)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopService) GetApplication(ctx context.Context, id string) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopService) ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.WorkshopApplication), args.Error(1)
}

func (m *mockWorkshopService) UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.WorkshopApplication, error) {
	args := m.Called(ctx, change)
	return args.Get(0).(domain.WorkshopApplication), args.Error(1)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) Stats(ctx context.Context, eventID *uuid.UUID) (domain.DashboardStats, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func activeEvent() *domain.Event {
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
