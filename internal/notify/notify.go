package notify

import (
	"context"
	"errors"
)

var ErrDeliveryRejected = errors.New("delivery service rejected the notification")

// Message is what the delivery service needs to render and send one email.
type Message struct {
	Kind          string            `json:"kind"`
	Recipient     string            `json:"recipient"`
	ApplicationID string            `json:"application_id"`
	Data          map[string]string `json:"data"`
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
