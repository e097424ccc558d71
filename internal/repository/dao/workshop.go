package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkshopApplication struct {
	ID      string    `gorm:"primaryKey"`
	Status  string    `gorm:"type:application_status;not null;default:'pending';index:workshop_applications_status_idx"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index:workshop_applications_event_id_idx"`
	Event   *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`

	ContactPerson   string `gorm:"not null"`
	Email           string `gorm:"not null;index:workshop_applications_email_idx"`
	PhoneNumber     string `gorm:"not null"`
	InstagramHandle *string

	WorkshopTitle          string `gorm:"not null"`
	WorkshopDescription    string `gorm:"type:text;not null"`
	SessionDuration        int    `gorm:"not null"`
	ParticipantsPerSession int    `gorm:"not null"`
	SessionsPerDay         int    `gorm:"not null"`
	MaterialsAndTools      string `gorm:"type:text;not null"`
	TargetAudience         string `gorm:"not null"`
	PreferredParticipation string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index:workshop_applications_created_at_idx"`
	UpdatedAt time.Time `gorm:"not null"`
}

type WorkshopStatusHook func(before, after WorkshopApplication) (*OutboxMessage, error)

type WorkshopDAO struct {
	db *gorm.DB
}

func NewWorkshopDAO(db *gorm.DB) *WorkshopDAO {
	return &WorkshopDAO{
		db: db,
	}
}

func (d *WorkshopDAO) Insert(ctx context.Context, event Event, app WorkshopApplication, msg *OutboxMessage) (WorkshopApplication, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app.EventID = event.ID

		id, err := insertWithNextID(tx, event, KindWorkshop, func(id string) error {
			app.ID = id
			return tx.Omit(clause.Associations).Create(&app).Error
		})
		if err != nil {
			return err
		}
		app.ID = id

		return insertOutbox(tx, msg, app.ID)
	})
	if err != nil {
		return WorkshopApplication{}, translate(err)
	}

	app.Event = &event

	return app, nil
}

func (d *WorkshopDAO) FindByID(ctx context.Context, id string) (WorkshopApplication, error) {
	var app WorkshopApplication

	result := d.db.WithContext(ctx).Preload("Event").First(&app, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return WorkshopApplication{}, ErrApplicationNotFound
		}

		return WorkshopApplication{}, result.Error
	}

	return app, nil
}

func (d *WorkshopDAO) FindAll(ctx context.Context, eventID *uuid.UUID) ([]WorkshopApplication, error) {
	var apps []WorkshopApplication

	query := d.db.WithContext(ctx).Preload("Event").Order("created_at DESC")
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	result := query.Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}

	return apps, nil
}

func (d *WorkshopDAO) UpdateStatus(ctx context.Context, id, status string, hook WorkshopStatusHook) (WorkshopApplication, error) {
	var app WorkshopApplication

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		before := app
		now := time.Now()
		err = tx.Model(&WorkshopApplication{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"status": status, "updated_at": now}).Error
		if err != nil {
			return err
		}
		app.Status = status
		app.UpdatedAt = now

		var event Event
		if err = tx.First(&event, "id = ?", app.EventID).Error; err != nil {
			return err
		}
		app.Event = &event

		if hook == nil {
			return nil
		}
		msg, err := hook(before, app)
		if err != nil {
			return err
		}

		return insertOutbox(tx, msg, app.ID)
	})
	if err != nil {
		return WorkshopApplication{}, err
	}

	return app, nil
}

func (d *WorkshopDAO) CountByStatus(ctx context.Context, eventID uuid.UUID) ([]StatusCount, error) {
	return countByStatus(ctx, d.db, &WorkshopApplication{}, eventID)
}
