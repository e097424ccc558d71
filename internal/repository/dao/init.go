package dao

import (
	"fmt"

	"gorm.io/gorm"
)

const createStatusEnum = `DO $$ BEGIN
	CREATE TYPE application_status AS ENUM ('pending', 'approved', 'rejected');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END $$;`

const createSingleActiveIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ` + constraintSingleActiveEvent +
	` ON events (is_active) WHERE is_active`

func InitTables(db *gorm.DB) error {
	if err := db.Exec(createStatusEnum).Error; err != nil {
		return fmt.Errorf("create application_status -> %w", err)
	}

	err := db.AutoMigrate(
		&Event{},
		&VendorTruckInfo{},
		&VendorApplication{},
		&VendorDish{},
		&VendorPowerRequirement{},
		&VendorEmployee{},
		&WorkshopApplication{},
		&ApplicationCounter{},
		&OutboxMessage{},
	)
	if err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	if err = db.Exec(createSingleActiveIndex).Error; err != nil {
		return fmt.Errorf("create %s -> %w", constraintSingleActiveEvent, err)
	}

	return nil
}

// dropAllTables is used by the integration tests to start from a clean schema.
func dropAllTables(db *gorm.DB) error {
	tables := []string{
		"outbox_messages",
		"application_counters",
		"workshop_applications",
		"vendor_employees",
		"vendor_power_requirements",
		"vendor_dishes",
		"vendor_applications",
		"vendor_truck_infos",
		"events",
	}
	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
			return err
		}
	}

	return db.Exec("DROP TYPE IF EXISTS application_status").Error
}
