package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/chefskiss/festival-api/internal/domain"
)

var vendorCSVHeader = []string{
	"ID",
	"Status",
	"Business Name",
	"Contact Person",
	"Email",
	"Phone Number",
	"Company Name",
	"Instagram",
	"Special Requirements",
	"Kitchen Equipment",
	"Storage",
	"Created At",
}

// WriteVendorCSV writes one row per application after a header row.
func WriteVendorCSV(w io.Writer, apps []domain.VendorApplication) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(vendorCSVHeader); err != nil {
		return fmt.Errorf("cw.Write -> %w", err)
	}

	for _, app := range apps {
		err := cw.Write([]string{
			app.ID,
			string(app.Status),
			app.BusinessName,
			app.ContactPerson,
			app.Email,
			app.PhoneNumber,
			app.CompanyName,
			app.InstagramHandle,
			app.SpecialRequirements,
			app.KitchenEquipment,
			app.Storage,
			app.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("cw.Write -> %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
