package services

import (
	"time"
)

const weekStartLayout = "2006-01-02"

// StartOfWeek returns the Monday 00:00 UTC that begins t's week. Sunday
// belongs to the week started the previous Monday. All weekly accounting
// runs on UTC so buckets are stable regardless of server or pantry
// timezone, and every read and write for one logical "this week" operation
// must derive its bucket from the same reference instant, normally "now"
// captured once when the external event arrives.
func StartOfWeek(t time.Time) time.Time {
	tt := t.UTC()
	offset := int(tt.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}
	monday := tt.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStartDate is the canonical YYYY-MM-DD label for t's week bucket.
func WeekStartDate(t time.Time) string {
	return StartOfWeek(t).Format(weekStartLayout)
}
