package dao

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefskiss/festival-api/internal/pkg/appid"
)

const (
	KindVendor   = "vendor"
	KindWorkshop = "workshop"
)

// ApplicationCounter holds the last sequence number handed out per event and
// application kind.
type ApplicationCounter struct {
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"primaryKey"`
	LastValue int       `gorm:"not null"`
	Event     *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

var counterTables = map[string]string{
	KindVendor:   "vendor_applications",
	KindWorkshop: "workshop_applications",
}

var kindTypeCodes = map[string]string{
	KindVendor:   appid.TypeVendor,
	KindWorkshop: appid.TypeWorkshop,
}

// maxIDAttempts bounds how many occupied IDs one submission skips.
const maxIDAttempts = 10

const idSavePoint = "application_id"

// nextSequence must run inside the submission transaction. The upserted
// counter row stays locked until that transaction ends, which serializes
// concurrent submissions for the same event and kind, and a rollback returns
// the number. The first number for a pair continues after any rows that were
// stored before the counter existed.
func nextSequence(tx *gorm.DB, eventID uuid.UUID, kind string) (int, error) {
	table, ok := counterTables[kind]
	if !ok {
		return 0, fmt.Errorf("unknown application kind %q", kind)
	}

	var seq int
	err := tx.Raw(`INSERT INTO application_counters (event_id, kind, last_value)
VALUES (@event, @kind, (SELECT count(*) FROM `+table+` WHERE event_id = @event) + 1)
ON CONFLICT (event_id, kind) DO UPDATE SET last_value = application_counters.last_value + 1
RETURNING last_value`,
		sql.Named("event", eventID),
		sql.Named("kind", kind),
	).Scan(&seq).Error
	if err != nil {
		return 0, translate(err)
	}

	return seq, nil
}

// insertWithNextID takes the next sequence number for event and kind and runs
// insert with the ID built from it. When the ID is already held by a row
// stored outside the counter, the failed insert is rolled back to a savepoint
// and the following number is tried. Skipped numbers stay consumed.
func insertWithNextID(tx *gorm.DB, event Event, kind string, insert func(id string) error) (string, error) {
	for attempt := 1; ; attempt++ {
		seq, err := nextSequence(tx, event.ID, kind)
		if err != nil {
			return "", err
		}

		id := appid.Generate(event.StartDate, event.LocationCode, seq, kindTypeCodes[kind])

		if err = tx.SavePoint(idSavePoint).Error; err != nil {
			return "", err
		}

		err = insert(id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(translate(err), ErrApplicationIDConflict) || attempt == maxIDAttempts {
			return "", err
		}

		if err = tx.RollbackTo(idSavePoint).Error; err != nil {
			return "", err
		}
	}
}
