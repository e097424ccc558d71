package appid

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	start := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		loc      string
		seq      int
		typeCode string
		want     string
	}{
		{"first vendor", start, "ANM", 1, TypeVendor, "26VE01ANM"},
		{"lower case location", start, "anm", 1, TypeVendor, "26VE01ANM"},
		{"eleventh workshop", start, "AYN", 11, TypeWorkshop, "26WS11AYN"},
		{"sequence widens past 99", start, "ANM", 100, TypeVendor, "26VE100ANM"},
		{"year 2105 keeps two digits", time.Date(2105, 1, 1, 0, 0, 0, 0, time.UTC), "x", 3, TypeVendor, "05VE03X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.start, tt.loc, tt.seq, tt.typeCode))
		})
	}
}

func TestGenerate_Format(t *testing.T) {
	format := regexp.MustCompile(`^\d{2}(VE|WS)\d{2,}[A-Z]+$`)
	start := time.Date(2027, time.May, 16, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for seq := 1; seq <= 150; seq++ {
		id := Generate(start, "anm", seq, TypeWorkshop)
		assert.Regexp(t, format, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
