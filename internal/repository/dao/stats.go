package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusCount struct {
	Status string
	Count  int64
}

func countByStatus(ctx context.Context, db *gorm.DB, model interface{}, eventID uuid.UUID) ([]StatusCount, error) {
	var counts []StatusCount

	result := db.WithContext(ctx).
		Model(model).
		Select("status::text AS status, count(*) AS count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}
