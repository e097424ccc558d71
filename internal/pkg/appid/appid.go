// Package appid builds the human-readable identifiers handed out to applicants.
//
// An identifier is the two-digit year of the event start, the application type
// code, the 1-based sequence number zero-padded to two digits and the upper-cased
// event location code: the first vendor application for a 2026 event at "anm"
// is 26VE01ANM. Sequences above 99 simply widen the number part.
package appid

import (
	"fmt"
	"strings"
	"time"
)

const (
	TypeVendor   = "VE"
	TypeWorkshop = "WS"
)

// Generate performs no uniqueness check: seq must come from the per-event,
// per-type counter.
func Generate(eventStart time.Time, locationCode string, seq int, typeCode string) string {
	return fmt.Sprintf("%02d%s%02d%s", eventStart.Year()%100, typeCode, seq, strings.ToUpper(locationCode))
}
