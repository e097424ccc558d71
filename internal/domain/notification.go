package domain

import "github.com/google/uuid"

type NotificationKind string

const (
	NotifyVendorConfirmation   NotificationKind = "vendor_confirmation"
	NotifyVendorAcceptance     NotificationKind = "vendor_acceptance"
	NotifyVendorRejection      NotificationKind = "vendor_rejection"
	NotifyWorkshopConfirmation NotificationKind = "workshop_confirmation"
	NotifyWorkshopAcceptance   NotificationKind = "workshop_acceptance"
	NotifyWorkshopRejection    NotificationKind = "workshop_rejection"
)

// Notification is the intent to tell an applicant about their application.
// It is stored alongside the write that caused it and delivered later.
type Notification struct {
	Kind          NotificationKind  `json:"kind"`
	Recipient     string            `json:"recipient"`
	ApplicationID string            `json:"application_id"`
	Data          map[string]string `json:"data"`
}

// QueuedNotification is a notification claimed from the outbox for delivery.
type QueuedNotification struct {
	Notification
	ID       uuid.UUID
	Attempts int
}
