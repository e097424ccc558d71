package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository/dao"
)

type fakeEventDAO struct {
	active dao.Event
	err    error
}

func (f *fakeEventDAO) Insert(_ context.Context, e dao.Event) (dao.Event, error) { return e, f.err }
func (f *fakeEventDAO) FindActive(context.Context) (dao.Event, error)           { return f.active, f.err }
func (f *fakeEventDAO) FindByID(context.Context, uuid.UUID) (dao.Event, error)  { return f.active, f.err }
func (f *fakeEventDAO) FindAll(context.Context) ([]dao.Event, error)            { return nil, f.err }
func (f *fakeEventDAO) Activate(context.Context, uuid.UUID) (dao.Event, error)  { return f.active, f.err }

func TestEventRepository_FindActive(t *testing.T) {
	ctx := context.Background()

	none, err := NewEventRepository(&fakeEventDAO{err: dao.ErrEventNotFound}).FindActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	id := uuid.New()
	active, err := NewEventRepository(&fakeEventDAO{active: dao.Event{ID: id, LocationCode: "KYV", IsActive: true}}).FindActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, id, active.ID)

	_, err = NewEventRepository(&fakeEventDAO{err: fmt.Errorf("boom")}).FindActive(ctx)
	assert.Error(t, err)
}

type fakeVendorDAO struct {
	inserted dao.VendorApplication
	msg      *dao.OutboxMessage
	stored   dao.VendorApplication
	counts   []dao.StatusCount
}

func (f *fakeVendorDAO) Insert(_ context.Context, event dao.Event, app dao.VendorApplication, msg *dao.OutboxMessage) (dao.VendorApplication, error) {
	f.inserted = app
	f.msg = msg
	app.ID = "26VE01KYV"
	app.EventID = event.ID
	return app, nil
}

func (f *fakeVendorDAO) FindByID(context.Context, string) (dao.VendorApplication, error) {
	return dao.VendorApplication{}, dao.ErrApplicationNotFound
}

func (f *fakeVendorDAO) FindAll(context.Context, *uuid.UUID) ([]dao.VendorApplication, error) {
	return []dao.VendorApplication{f.stored}, nil
}

func (f *fakeVendorDAO) UpdateStatus(_ context.Context, _, status string, hook dao.VendorStatusHook) (dao.VendorApplication, error) {
	after := f.stored
	after.Status = status
	msg, err := hook(f.stored, after)
	if err != nil {
		return dao.VendorApplication{}, err
	}
	f.msg = msg
	return after, nil
}

func (f *fakeVendorDAO) CountByStatus(context.Context, uuid.UUID) ([]dao.StatusCount, error) {
	return f.counts, nil
}

func TestVendorRepository_Create_MapsAggregate(t *testing.T) {
	fake := &fakeVendorDAO{}
	repo := NewVendorRepository(fake)

	event := domain.Event{ID: uuid.New(), LocationCode: "KYV", StartDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)}
	created, err := repo.Create(context.Background(), event, domain.VendorApplication{
		Envelope:     domain.Envelope{Status: domain.StatusPending},
		BusinessName: "Taco Loco",
		Email:        "olena@example.com",
		Dishes:       []domain.Dish{{Name: "Churros", Price: decimal.RequireFromString("60")}},
		Employees:    []domain.Employee{{Name: "Ivan"}},
	}, &domain.Notification{
		Kind:      domain.NotifyVendorConfirmation,
		Recipient: "olena@example.com",
		Data:      map[string]string{"businessName": "Taco Loco"},
	})
	require.NoError(t, err)

	assert.Equal(t, "26VE01KYV", created.ID)
	assert.Equal(t, domain.KindVendor, created.Kind)
	assert.Equal(t, event.ID, created.EventID)
	assert.Nil(t, created.TruckInfo)
	assert.Nil(t, fake.inserted.TruckInfo)
	assert.Nil(t, fake.inserted.InstagramHandle)
	require.Len(t, fake.inserted.Dishes, 1)
	assert.Equal(t, "Churros", fake.inserted.Dishes[0].Name)

	require.NotNil(t, fake.msg)
	assert.Equal(t, "vendor_confirmation", fake.msg.Kind)
	assert.Equal(t, "Taco Loco", fake.msg.Payload["businessName"])
}

func TestVendorRepository_UpdateStatus_RunsReview(t *testing.T) {
	fake := &fakeVendorDAO{stored: dao.VendorApplication{ID: "26VE01KYV", Status: "pending", Email: "olena@example.com"}}
	repo := NewVendorRepository(fake)

	updated, err := repo.UpdateStatus(context.Background(), "26VE01KYV", domain.StatusRejected,
		func(before, after domain.VendorApplication) (*domain.Notification, error) {
			assert.Equal(t, domain.StatusPending, before.Status)
			assert.Equal(t, domain.StatusRejected, after.Status)
			return &domain.Notification{Kind: domain.NotifyVendorRejection, Recipient: after.Email}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	require.NotNil(t, fake.msg)
	assert.Equal(t, "vendor_rejection", fake.msg.Kind)
}

func TestVendorRepository_FindByID_NotFound(t *testing.T) {
	_, err := NewVendorRepository(&fakeVendorDAO{}).FindByID(context.Background(), "26VE09KYV")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestVendorRepository_CountByStatus(t *testing.T) {
	fake := &fakeVendorDAO{counts: []dao.StatusCount{
		{Status: "pending", Count: 4},
		{Status: "approved", Count: 2},
		{Status: "rejected", Count: 1},
	}}

	counts, err := NewVendorRepository(fake).CountByStatus(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCounts{Total: 7, Pending: 4, Approved: 2, Rejected: 1}, counts)
}

func TestPayloadToData(t *testing.T) {
	data := payloadToData(map[string]interface{}{"name": "Taco", "count": float64(3)})
	assert.Equal(t, map[string]string{"name": "Taco", "count": "3"}, data)
}
