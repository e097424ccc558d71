package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

)

type VendorApplication struct {
	ID      string    `gorm:"primaryKey"`
	Status  string    `gorm:"type:application_status;not null;default:'pending';index:vendor_applications_status_idx"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index:vendor_applications_event_id_idx"`
	Event   *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`

	BusinessName    string `gorm:"not null"`
	ContactPerson   string `gorm:"not null"`
	Email           string `gorm:"not null;index:vendor_applications_email_idx"`
	PhoneNumber     string `gorm:"not null"`
	CompanyName     string `gorm:"not null"`
	InstagramHandle *string

	SpecialRequirements *string
	KitchenEquipment    *string
	Storage             *string

	BusinessLicenseURL                string `gorm:"not null"`
	HygieneInspectionCertificationURL string `gorm:"not null"`
	LiabilityInsuranceURL             string `gorm:"not null"`

	TruckInfoID *uuid.UUID       `gorm:"type:uuid"`
	TruckInfo   *VendorTruckInfo `gorm:"foreignKey:TruckInfoID;constraint:OnDelete:SET NULL"`

	Dishes            []VendorDish             `gorm:"foreignKey:VendorApplicationID;constraint:OnDelete:CASCADE"`
	PowerRequirements []VendorPowerRequirement `gorm:"foreignKey:VendorApplicationID;constraint:OnDelete:CASCADE"`
	Employees         []VendorEmployee         `gorm:"foreignKey:VendorApplicationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null;index:vendor_applications_created_at_idx"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VendorTruckInfo struct {
	ID                          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PhotoURL                    string          `gorm:"not null"`
	Length                      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Width                       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Height                      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ElectroMechanicalLicenseURL string          `gorm:"not null"`
	CreatedAt                   time.Time       `gorm:"not null"`
}

type VendorDish struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorApplicationID string          `gorm:"not null;index:vendor_dishes_application_idx"`
	Position            int             `gorm:"not null"`
	Name                string          `gorm:"not null"`
	Price               decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt           time.Time       `gorm:"not null"`
}

type VendorPowerRequirement struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorApplicationID string    `gorm:"not null;index:vendor_power_requirements_application_idx"`
	Position            int       `gorm:"not null"`
	Device              string    `gorm:"not null"`
	Wattage             int       `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null"`
}

type VendorEmployee struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorApplicationID  string    `gorm:"not null;index:vendor_employees_application_idx"`
	Position             int       `gorm:"not null"`
	Name                 string    `gorm:"not null"`
	HealthCertificateURL string    `gorm:"not null"`
	SocialInsuranceURL   string    `gorm:"not null"`
	CreatedAt            time.Time `gorm:"not null"`
}

func (t *VendorTruckInfo) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (d *VendorDish) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (p *VendorPowerRequirement) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (e *VendorEmployee) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// VendorStatusHook runs inside the status update transaction with the row as
// it was before and after the update. A returned error aborts the update; a
// returned message is queued in the outbox.
type VendorStatusHook func(before, after VendorApplication) (*OutboxMessage, error)

type VendorDAO struct {
	db *gorm.DB
}

func NewVendorDAO(db *gorm.DB) *VendorDAO {
	return &VendorDAO{
		db: db,
	}
}

// Insert stores the application with its truck, dishes, power requirements,
// employees and confirmation message in a single transaction. The ID is
// derived from event and the next free sequence number for it.
func (d *VendorDAO) Insert(ctx context.Context, event Event, app VendorApplication, msg *OutboxMessage) (VendorApplication, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app.EventID = event.ID

		if app.TruckInfo != nil {
			if err := tx.Create(app.TruckInfo).Error; err != nil {
				return err
			}
			app.TruckInfoID = &app.TruckInfo.ID
		}

		id, err := insertWithNextID(tx, event, KindVendor, func(id string) error {
			app.ID = id
			return tx.Omit(clause.Associations).Create(&app).Error
		})
		if err != nil {
			return err
		}
		app.ID = id

		for i := range app.Dishes {
			app.Dishes[i].VendorApplicationID = app.ID
			app.Dishes[i].Position = i
		}
		for i := range app.PowerRequirements {
			app.PowerRequirements[i].VendorApplicationID = app.ID
			app.PowerRequirements[i].Position = i
		}
		for i := range app.Employees {
			app.Employees[i].VendorApplicationID = app.ID
			app.Employees[i].Position = i
		}

		if len(app.Dishes) > 0 {
			if err = tx.Create(&app.Dishes).Error; err != nil {
				return err
			}
		}
		if len(app.PowerRequirements) > 0 {
			if err = tx.Create(&app.PowerRequirements).Error; err != nil {
				return err
			}
		}
		if len(app.Employees) > 0 {
			if err = tx.Create(&app.Employees).Error; err != nil {
				return err
			}
		}

		return insertOutbox(tx, msg, app.ID)
	})
	if err != nil {
		return VendorApplication{}, translate(err)
	}

	app.Event = &event

	return app, nil
}

func (d *VendorDAO) FindByID(ctx context.Context, id string) (VendorApplication, error) {
	var app VendorApplication

	result := preloadVendor(d.db.WithContext(ctx)).First(&app, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return VendorApplication{}, ErrApplicationNotFound
		}

		return VendorApplication{}, result.Error
	}

	return app, nil
}

// FindAll lists applications newest first. A nil eventID lists every event.
func (d *VendorDAO) FindAll(ctx context.Context, eventID *uuid.UUID) ([]VendorApplication, error) {
	var apps []VendorApplication

	query := preloadVendor(d.db.WithContext(ctx)).Order("created_at DESC")
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	result := query.Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}

	return apps, nil
}

func (d *VendorDAO) UpdateStatus(ctx context.Context, id, status string, hook VendorStatusHook) (VendorApplication, error) {
	var app VendorApplication

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
		err = tx.Model(&VendorApplication{}).
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
		return VendorApplication{}, err
	}

	return app, nil
}

func (d *VendorDAO) CountByStatus(ctx context.Context, eventID uuid.UUID) ([]StatusCount, error) {
	return countByStatus(ctx, d.db, &VendorApplication{}, eventID)
}

func preloadVendor(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}

	return db.
		Preload("Event").
		Preload("TruckInfo").
		Preload("Dishes", byPosition).
		Preload("PowerRequirements", byPosition).
		Preload("Employees", byPosition)
}
