package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeekMidweek(t *testing.T) {
	// Wednesday
	wed := time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-06", WeekStartDate(wed))
}

func TestStartOfWeekMondayIsItsOwnBoundary(t *testing.T) {
	mon := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, StartOfWeek(mon))

	lateMon := time.Date(2025, 1, 6, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-01-06", WeekStartDate(lateMon))
}

func TestStartOfWeekSundayBelongsToPriorMonday(t *testing.T) {
	sun := time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-06", WeekStartDate(sun))

	nextMon := time.Date(2025, 1, 13, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-13", WeekStartDate(nextMon))
}

func TestStartOfWeekNormalizesToUTC(t *testing.T) {
	// Monday 05:00 in Sydney is still Sunday in UTC, so it lands in the
	// prior week's bucket.
	aest := time.FixedZone("AEST", 10*3600)
	localMonday := time.Date(2025, 1, 13, 5, 0, 0, 0, aest)
	assert.Equal(t, "2025-01-06", WeekStartDate(localMonday))

	// The same instant expressed in two zones buckets identically.
	assert.Equal(t, WeekStartDate(localMonday), WeekStartDate(localMonday.UTC()))
}
