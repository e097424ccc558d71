package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/config"
	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/metrics"
	"github.com/chefskiss/festival-api/internal/notify"
)

type OutboxRepository interface {
	Claim(ctx context.Context, limit int, lease time.Duration) ([]domain.QueuedNotification, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error
}

// Dispatcher delivers queued notifications. Delivery failures are retried
// with linear backoff and never surface to the request that queued them.
type Dispatcher struct {
	repo     OutboxRepository
	notifier notify.Notifier
	conf     *config.OutboxConfig
}

func NewDispatcher(repo OutboxRepository, notifier notify.Notifier, conf *config.OutboxConfig) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		notifier: notifier,
		conf:     conf,
	}
}

// Run polls the outbox until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.conf.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
				zap.L().Error("outbox dispatch failed", zap.Error(err))
			}
		}
	}
}

// DispatchOnce handles one batch and reports how many messages were delivered.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	queued, err := d.repo.Claim(ctx, d.conf.BatchSize, d.conf.Lease)
	if err != nil {
		return 0, fmt.Errorf("d.repo.Claim -> %w", err)
	}

	sent := 0
	for _, n := range queued {
		if d.deliver(ctx, n) {
			sent++
		}
	}

	return sent, nil
}

func (d *Dispatcher) deliver(ctx context.Context, n domain.QueuedNotification) bool {
	log := zap.L().With(
		zap.String("kind", string(n.Kind)),
		zap.String("application_id", n.ApplicationID),
		zap.String("recipient", n.Recipient),
		zap.Int("attempt", n.Attempts),
	)

	sendErr := d.notifier.Send(ctx, notify.Message{
		Kind:          string(n.Kind),
		Recipient:     n.Recipient,
		ApplicationID: n.ApplicationID,
		Data:          n.Data,
	})
	if sendErr == nil {
		if err := d.repo.MarkSent(ctx, n.ID); err != nil {
			log.Error("marking notification sent failed", zap.Error(err))
		}
		metrics.Notifications.WithLabelValues(string(n.Kind), "sent").Inc()
		return true
	}

	var retryAt *time.Time
	result := "failed"
	if n.Attempts < d.conf.MaxAttempts {
		at := time.Now().Add(time.Duration(n.Attempts) * d.conf.RetryBackoff)
		retryAt = &at
		result = "retry"
		log.Warn("notification delivery failed, will retry", zap.Time("retry_at", at), zap.Error(sendErr))
	} else {
		log.Error("notification delivery failed, giving up", zap.Error(sendErr))
	}

	if err := d.repo.MarkFailed(ctx, n.ID, sendErr.Error(), retryAt); err != nil {
		log.Error("recording notification failure failed", zap.Error(err))
	}
	metrics.Notifications.WithLabelValues(string(n.Kind), result).Inc()

	return false
}
