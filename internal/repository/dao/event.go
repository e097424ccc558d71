package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	LocationCode string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	StartDate    time.Time `gorm:"not null;index:events_start_date_idx"`
	EndDate      time.Time `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:false;index:events_is_active_idx"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// FindActive returns ErrEventNotFound when no event is active.
func (d *EventDAO) FindActive(ctx context.Context) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Where("is_active = ?", true).Limit(1).Find(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uuid.UUID) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("start_date DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Insert creates the event. An event created active replaces the current
// active one in the same transaction.
func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event.IsActive {
			if err := deactivateAll(tx); err != nil {
				return err
			}
		}

		return tx.Create(&event).Error
	})
	if err != nil {
		return Event{}, translate(err)
	}

	return event, nil
}

// Activate makes id the single active event.
func (d *EventDAO) Activate(ctx context.Context, id uuid.UUID) (Event, error) {
	var event Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err := deactivateAll(tx); err != nil {
			return err
		}

		if err := tx.Model(&Event{}).Where("id = ?", id).Update("is_active", true).Error; err != nil {
			return err
		}
		event.IsActive = true

		return nil
	})
	if err != nil {
		return Event{}, translate(err)
	}

	return event, nil
}

func deactivateAll(tx *gorm.DB) error {
	return tx.Model(&Event{}).Where("is_active = ?", true).Update("is_active", false).Error
}
