package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthKey_ZoneBoundary(t *testing.T) {
	ict := time.FixedZone("ICT", 7*60*60)

	// 19:00 UTC on the last day of August is already September in ICT.
	// The report month must follow the bookkeeping zone, not UTC.
	instant := time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-09", MonthKey(instant, ict))
	require.Equal(t, "2026-08", MonthKey(instant, time.UTC))

	// Well inside the month both zones agree.
	mid := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-09", MonthKey(mid, ict))
	require.Equal(t, "2026-09", MonthKey(mid, time.UTC))
}

func TestLoadZone_Fallback(t *testing.T) {
	require.Equal(t, 7*60*60, zoneOffset(t, LoadZone("no/such_zone")))
	require.NotNil(t, LoadZone(""))
}

func zoneOffset(t *testing.T, loc *time.Location) int {
	t.Helper()
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
	return offset
}
