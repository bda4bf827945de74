package journal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical key format for journal dates
const DateLayout = "2006-01-02"

// Entry represents one journal day: realized profit or loss, free-form
// notes, and whether a session was actually traded. Entries are immutable
// once created; callers replace them wholesale via Upsert.
type Entry struct {
	Date      time.Time
	PnL       decimal.Decimal
	Notes     string
	HasTraded bool
}

// Key returns the canonical date key of the entry
func (e Entry) Key() string {
	return e.Date.Format(DateLayout)
}

// Journal maps a date key (YYYY-MM-DD) to the single entry for that day.
// Insertion order is irrelevant; all consumers iterate in date order.
type Journal map[string]Entry

// New creates an empty journal
func New() Journal {
	return make(Journal)
}

// Upsert inserts or replaces the entry for its date
func (j Journal) Upsert(e Entry) {
	j[e.Key()] = e
}

// Remove deletes the entry for a date key, if present
func (j Journal) Remove(dateKey string) {
	delete(j, dateKey)
}

// Sorted returns all entries in chronological order
func (j Journal) Sorted() []Entry {
	entries := make([]Entry, 0, len(j))
	for _, e := range j {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Date.Before(entries[b].Date)
	})
	return entries
}

// Between returns the chronological entries with from <= date <= to,
// comparing calendar days.
func (j Journal) Between(from, to time.Time) []Entry {
	fromDay := Day(from)
	toDay := Day(to)

	var entries []Entry
	for _, e := range j.Sorted() {
		d := Day(e.Date)
		if d.Before(fromDay) || d.After(toDay) {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// TradedOn reports whether a traded session is recorded for the given day
func (j Journal) TradedOn(t time.Time) bool {
	e, ok := j[t.Format(DateLayout)]
	return ok && e.HasTraded
}

// RecentTraded returns up to n traded entries, most recent first
func (j Journal) RecentTraded(n int) []Entry {
	sorted := j.Sorted()

	var recent []Entry
	for i := len(sorted) - 1; i >= 0 && len(recent) < n; i-- {
		if sorted[i].HasTraded {
			recent = append(recent, sorted[i])
		}
	}
	return recent
}

// Day truncates a timestamp to its calendar day in UTC
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a canonical date key
func ParseDate(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}
