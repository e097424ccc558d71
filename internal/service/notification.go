package service

import (
	"time"

	"github.com/chefskiss/festival-api/internal/domain"
)

const festivalName = "Chef's Kiss Festival"

func vendorConfirmation(app domain.VendorApplication, submittedAt time.Time) *domain.Notification {
	return &domain.Notification{
		Kind:      domain.NotifyVendorConfirmation,
		Recipient: app.Email,
		Data: map[string]string{
			"subject":        "Application Received - " + festivalName,
			"businessName":   app.BusinessName,
			"submissionDate": submittedAt.Format("2 January 2006"),
		},
	}
}

// vendorDecision returns nil for a move back to pending.
func vendorDecision(app domain.VendorApplication, reason string) *domain.Notification {
	switch app.Status {
	case domain.StatusApproved:
		data := map[string]string{
			"subject":      "Application Approved - " + festivalName,
			"businessName": app.BusinessName,
		}
		addEventDetails(data, app.Event)

		return &domain.Notification{
			Kind:          domain.NotifyVendorAcceptance,
			Recipient:     app.Email,
			ApplicationID: app.ID,
			Data:          data,
		}
	case domain.StatusRejected:
		data := map[string]string{
			"subject":      "Regarding Your Vendor Application - " + festivalName,
			"businessName": app.BusinessName,
		}
		if reason != "" {
			data["reason"] = reason
		}

		return &domain.Notification{
			Kind:          domain.NotifyVendorRejection,
			Recipient:     app.Email,
			ApplicationID: app.ID,
			Data:          data,
		}
	}

	return nil
}

func workshopConfirmation(app domain.WorkshopApplication, submittedAt time.Time) *domain.Notification {
	return &domain.Notification{
		Kind:      domain.NotifyWorkshopConfirmation,
		Recipient: app.Email,
		Data: map[string]string{
			"subject":        "Workshop Application Received - " + festivalName,
			"contactPerson":  app.ContactPerson,
			"workshopTitle":  app.WorkshopTitle,
			"submissionDate": submittedAt.Format("2 January 2006"),
		},
	}
}

func workshopDecision(app domain.WorkshopApplication, reason string) *domain.Notification {
	switch app.Status {
	case domain.StatusApproved:
		data := map[string]string{
			"subject":       "Workshop Application Approved - " + festivalName,
			"contactPerson": app.ContactPerson,
			"workshopTitle": app.WorkshopTitle,
		}
		addEventDetails(data, app.Event)

		return &domain.Notification{
			Kind:          domain.NotifyWorkshopAcceptance,
			Recipient:     app.Email,
			ApplicationID: app.ID,
			Data:          data,
		}
	case domain.StatusRejected:
		data := map[string]string{
			"subject":       "Regarding Your Workshop Application - " + festivalName,
			"contactPerson": app.ContactPerson,
		}
		if reason != "" {
			data["reason"] = reason
		}

		return &domain.Notification{
			Kind:          domain.NotifyWorkshopRejection,
			Recipient:     app.Email,
			ApplicationID: app.ID,
			Data:          data,
		}
	}

	return nil
}

func addEventDetails(data map[string]string, event *domain.Event) {
	if event == nil {
		return
	}
	data["eventName"] = event.Name
	data["eventLocation"] = event.Location
	data["festivalDate"] = event.DateRange()
}
