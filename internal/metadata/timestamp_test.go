package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_RoundTrip(t *testing.T) {
	parsed, err := ParseTimestamp("20200101T000000Z")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, "20200101T000000Z", FormatTimestamp(parsed))
}

func TestParseTimestamp_EndOfDay(t *testing.T) {
	parsed, err := ParseTimestamp("20191231T235959Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC), parsed)
}

func TestParseTimestamp_Rejects(t *testing.T) {
	for _, s := range []string{
		"",
		"20200101",
		"20200101T000000z",
		"2020-01-01T00:00:00Z",
		"20200101T000000.123Z",
		"20200230T000000Z",
		" 20200101T000000Z",
	} {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestFormatTimestamp_ConvertsToUTC(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	assert.Equal(t, "20200101T000000Z", FormatTimestamp(time.Date(2020, 1, 1, 1, 0, 0, 0, cet)))
}
