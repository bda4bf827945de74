package riskservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartrisk/internal/domain/journal"
)

func TestBusinessDaysLeft_MidMonth(t *testing.T) {
	engine := testEngine()

	// Wed 2025-01-15 through Fri 2025-01-31: 3 + 5 + 5 weekdays
	left := engine.BusinessDaysLeft(journal.New(), day(t, "2025-01-15"))
	assert.Equal(t, 13, left)
}

func TestBusinessDaysLeft_TradedTodayConsumesSession(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-15", 50))

	left := engine.BusinessDaysLeft(j, day(t, "2025-01-15"))
	assert.Equal(t, 12, left)
}

func TestBusinessDaysLeft_WeekendReference(t *testing.T) {
	engine := testEngine()

	// Sat 2025-01-25: remaining weekdays are Mon 27 .. Fri 31
	left := engine.BusinessDaysLeft(journal.New(), day(t, "2025-01-25"))
	assert.Equal(t, 5, left)
}

func TestBusinessDaysLeft_NeverNegative(t *testing.T) {
	engine := testEngine()

	// Fri 2025-01-31 is the last weekday of the month and already traded
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-31", -10))

	left := engine.BusinessDaysLeft(j, day(t, "2025-01-31"))
	assert.Equal(t, 0, left)

	// Sunday after the last weekday, also traded (weekend session logged)
	j2 := journal.New()
	j2.Upsert(tradedDay(t, "2025-08-31", -10)) // Sun 2025-08-31
	assert.Equal(t, 0, engine.BusinessDaysLeft(j2, day(t, "2025-08-31")))
}
