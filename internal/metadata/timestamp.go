package metadata

import (
	"fmt"
	"time"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// ParseTimestamp parses a GEOMS timestamp such as "20200101T000000Z" as UTC.
//
// The match is exact: time.Parse alone would also accept a fractional second
// before the Z, so the result must format back to the input.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(geoms.DateTimeFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(geoms.DateTimeFormat) != s {
		return time.Time{}, fmt.Errorf("parsing time %q: extra text", s)
	}
	return t, nil
}

// FormatTimestamp renders t in UTC using geoms.DateTimeFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(geoms.DateTimeFormat)
}
