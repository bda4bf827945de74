package riskservice

import (
	"time"

	"smartrisk/internal/domain/journal"
)

// BusinessDaysLeft counts the remaining weekday sessions from the
// reference date (inclusive) through the end of its calendar month. When
// the journal already shows a traded session for the reference date,
// today's session is consumed and the count drops by one. Never negative.
func (e *Engine) BusinessDaysLeft(j journal.Journal, ref time.Time) int {
	day := journal.Day(ref)
	end := endOfMonth(day)

	count := 0
	for d := day; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}

	if j.TradedOn(day) {
		count--
	}
	if count < 0 {
		count = 0
	}
	return count
}

// startOfMonth returns the first calendar day of t's month
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// endOfMonth returns the last calendar day of t's month
func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, -1)
}

// startOfISOWeek returns the Monday of t's ISO week
func startOfISOWeek(t time.Time) time.Time {
	day := journal.Day(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week started the prior Monday
	}
	return day.AddDate(0, 0, -offset)
}
