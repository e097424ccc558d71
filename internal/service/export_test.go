package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefskiss/festival-api/internal/domain"
)

func TestWriteVendorCSV(t *testing.T) {
	apps := []domain.VendorApplication{
		{
			Envelope: domain.Envelope{
				ID:        "26VE01KYV",
				Status:    domain.StatusApproved,
				CreatedAt: time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC),
			},
			BusinessName:        `Taco "Loco"`,
			ContactPerson:       "Olena",
			Email:               "olena@example.com",
			PhoneNumber:         "+380441234567",
			CompanyName:         "Taco Loco, LLC",
			SpecialRequirements: "needs shade\nand water",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteVendorCSV(&buf, apps))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, vendorCSVHeader, records[0])
	assert.Equal(t, []string{
		"26VE01KYV",
		"approved",
		`Taco "Loco"`,
		"Olena",
		"olena@example.com",
		"+380441234567",
		"Taco Loco, LLC",
		"",
		"needs shade\nand water",
		"",
		"",
		"2026-03-01T10:30:00Z",
	}, records[1])
}
