package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository/dao"
)

type OutboxDAO interface {
	Claim(ctx context.Context, limit int, lease time.Duration) ([]dao.OutboxMessage, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error
}

type OutboxRepository struct {
	dao OutboxDAO
}

func NewOutboxRepository(dao OutboxDAO) *OutboxRepository {
	return &OutboxRepository{
		dao: dao,
	}
}

func (r *OutboxRepository) Claim(ctx context.Context, limit int, lease time.Duration) ([]domain.QueuedNotification, error) {
	msgs, err := r.dao.Claim(ctx, limit, lease)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Claim -> %w", err)
	}

	queued := make([]domain.QueuedNotification, len(msgs))
	for i, m := range msgs {
		queued[i] = domain.QueuedNotification{
			ID:       m.ID,
			Attempts: m.Attempts,
			Notification: domain.Notification{
				Kind:          domain.NotificationKind(m.Kind),
				Recipient:     m.Recipient,
				ApplicationID: m.ApplicationID,
				Data:          payloadToData(m.Payload),
			},
		}
	}

	return queued, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.MarkSent(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkSent -> %w", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error {
	if err := r.dao.MarkFailed(ctx, id, reason, retryAt); err != nil {
		return fmt.Errorf("r.dao.MarkFailed -> %w", err)
	}
	return nil
}

func notificationToOutbox(n *domain.Notification) *dao.OutboxMessage {
	if n == nil {
		return nil
	}

	payload := make(datatypes.JSONMap, len(n.Data))
	for k, v := range n.Data {
		payload[k] = v
	}

	return &dao.OutboxMessage{
		Kind:      string(n.Kind),
		Recipient: n.Recipient,
		Payload:   payload,
	}
}

func payloadToData(p datatypes.JSONMap) map[string]string {
	data := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok := v.(string); ok {
			data[k] = s
			continue
		}
		data[k] = fmt.Sprint(v)
	}
	return data
}
