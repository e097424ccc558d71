package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	OutboxPending = "pending"
	OutboxSent    = "sent"
	OutboxFailed  = "failed"
)

// OutboxMessage is a notification waiting to be handed to the notifier. It is
// written in the same transaction as the change that caused it.
type OutboxMessage struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Kind          string            `gorm:"not null"`
	Recipient     string            `gorm:"not null"`
	ApplicationID string            `gorm:"not null;index:outbox_messages_application_id_idx"`
	Payload       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	Status        string            `gorm:"not null;default:'pending';index:outbox_messages_due_idx,priority:1"`
	Attempts      int               `gorm:"not null;default:0"`
	LastError     *string
	AvailableAt   time.Time `gorm:"not null;index:outbox_messages_due_idx,priority:2"`
	SentAt        *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (m *OutboxMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = OutboxPending
	}
	if m.AvailableAt.IsZero() {
		m.AvailableAt = time.Now()
	}
	if m.Payload == nil {
		m.Payload = datatypes.JSONMap{}
	}
	return nil
}

type OutboxDAO struct {
	db *gorm.DB
}

func NewOutboxDAO(db *gorm.DB) *OutboxDAO {
	return &OutboxDAO{
		db: db,
	}
}

// Claim leases up to limit due messages. Leased messages are invisible to
// other dispatchers until lease has passed, so a crashed dispatcher only
// delays delivery.
func (d *OutboxDAO) Claim(ctx context.Context, limit int, lease time.Duration) ([]OutboxMessage, error) {
	var msgs []OutboxMessage

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND available_at <= ?", OutboxPending, now).
			Order("available_at").
			Limit(limit).
			Find(&msgs).Error
		if err != nil || len(msgs) == 0 {
			return err
		}

		ids := make([]uuid.UUID, len(msgs))
		for i := range msgs {
			ids[i] = msgs[i].ID
			msgs[i].Attempts++
		}

		return tx.Model(&OutboxMessage{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"attempts":     gorm.Expr("attempts + 1"),
				"available_at": now.Add(lease),
				"updated_at":   now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return msgs, nil
}

func (d *OutboxDAO) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return d.db.WithContext(ctx).Model(&OutboxMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     OutboxSent,
			"sent_at":    now,
			"last_error": nil,
			"updated_at": now,
		}).Error
}

// MarkFailed records a failed delivery. A nil retryAt gives up on the message.
func (d *OutboxDAO) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error {
	updates := map[string]interface{}{
		"last_error": reason,
		"updated_at": time.Now(),
	}
	if retryAt != nil {
		updates["available_at"] = *retryAt
	} else {
		updates["status"] = OutboxFailed
	}

	return d.db.WithContext(ctx).Model(&OutboxMessage{}).Where("id = ?", id).Updates(updates).Error
}

func (d *OutboxDAO) FindByApplicationID(ctx context.Context, applicationID string) ([]OutboxMessage, error) {
	var msgs []OutboxMessage

	result := d.db.WithContext(ctx).Where("application_id = ?", applicationID).Order("created_at").Find(&msgs)
	if result.Error != nil {
		return nil, result.Error
	}

	return msgs, nil
}

func insertOutbox(tx *gorm.DB, msg *OutboxMessage, applicationID string) error {
	if msg == nil {
		return nil
	}
	msg.ApplicationID = applicationID

	return tx.Create(msg).Error
}
