package dao

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestEventDAO_FindActive(t *testing.T) {
	db := setupDB(t)
	d := NewEventDAO(db)
	ctx := testContext(t)

	_, err := d.FindActive(ctx)
	assert.ErrorIs(t, err, ErrEventNotFound)

	seedEvent(t, db, false)
	active := seedEvent(t, db, true)

	found, err := d.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)
}

func TestEventDAO_FindAll_OrdersByStartDate(t *testing.T) {
	db := setupDB(t)
	d := NewEventDAO(db)
	ctx := testContext(t)

	for _, year := range []int{2024, 2026, 2025} {
		_, err := d.Insert(ctx, Event{
			Name:         "Festival",
			Location:     "Lviv",
			LocationCode: "LVV",
			StartDate:    time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(year, time.May, 2, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	events, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 2026, events[0].StartDate.Year())
	assert.Equal(t, 2025, events[1].StartDate.Year())
	assert.Equal(t, 2024, events[2].StartDate.Year())
}

func TestEventDAO_Activate(t *testing.T) {
	db := setupDB(t)
	d := NewEventDAO(db)
	ctx := testContext(t)

	first := seedEvent(t, db, true)
	second := seedEvent(t, db, false)

	activated, err := d.Activate(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	reloaded, err := d.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	var activeCount int64
	require.NoError(t, db.Model(&Event{}).Where("is_active").Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount)

	_, err = d.Activate(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_SingleActiveIndex(t *testing.T) {
	db := setupDB(t)
	seedEvent(t, db, true)
	other := seedEvent(t, db, false)

	err := db.Model(&Event{}).Where("id = ?", other.ID).Update("is_active", true).Error
	assert.ErrorIs(t, translate(err), ErrActiveEventConflict)
}
