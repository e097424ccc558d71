package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrActiveEventConflict   = errors.New("another event was activated concurrently")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationIDConflict = errors.New("application id already taken")
)

const (
	constraintSingleActiveEvent = "events_single_active_idx"
	constraintVendorPK          = "vendor_applications_pkey"
	constraintWorkshopPK        = "workshop_applications_pkey"
)

// translate maps the Postgres errors callers can act on to sentinels and
// returns everything else untouched.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintSingleActiveEvent:
			return ErrActiveEventConflict
		case constraintVendorPK, constraintWorkshopPK:
			return ErrApplicationIDConflict
		}
	case pgerrcode.ForeignKeyViolation:
		if pgErr.TableName == "application_counters" {
			return ErrEventNotFound
		}
	}

	return err
}
