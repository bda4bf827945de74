package riskservice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
	"smartrisk/pkg/logger"
)

// Test helpers

func testEngine() *Engine {
	return NewEngine(testContracts(), logger.Get())
}

func testContracts() []risk.ContractSpec {
	return []risk.ContractSpec{
		{
			Symbol:            "MNQ",
			MarginPerContract: decimal.NewFromInt(50),
			TickValue:         decimal.NewFromFloat(0.50),
			TickSize:          0.25,
			Category:          "micro",
		},
		{
			Symbol:            "MES",
			MarginPerContract: decimal.NewFromInt(50),
			TickValue:         decimal.NewFromFloat(1.25),
			TickSize:          0.25,
			Category:          "micro",
		},
		{
			Symbol:            "ES",
			MarginPerContract: decimal.NewFromInt(500),
			TickValue:         decimal.NewFromFloat(12.50),
			TickSize:          0.25,
			Category:          "standard",
		},
	}
}

func day(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := journal.ParseDate(key)
	require.NoError(t, err)
	return d
}

func tradedDay(t *testing.T, key string, pnl float64) journal.Entry {
	t.Helper()
	return journal.Entry{
		Date:      day(t, key),
		PnL:       decimal.NewFromFloat(pnl),
		HasTraded: true,
	}
}

func restDay(t *testing.T, key string) journal.Entry {
	t.Helper()
	return journal.Entry{Date: day(t, key)}
}

// Tests

func TestCurrentBalance_EmptyJournal(t *testing.T) {
	engine := testEngine()

	balance := engine.CurrentBalance(journal.New(), decimal.NewFromInt(10000))
	assert.True(t, balance.Equal(decimal.NewFromInt(10000)))
}

func TestCurrentBalance_SumsTradedDaysOnly(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-13", 150.25))
	j.Upsert(tradedDay(t, "2025-01-14", -80.10))
	// stray pnl on a non-traded day must not count
	rest := restDay(t, "2025-01-15")
	rest.PnL = decimal.NewFromFloat(999)
	j.Upsert(rest)

	balance := engine.CurrentBalance(j, decimal.NewFromInt(10000))
	assert.Equal(t, "10070.15", balance.StringFixed(2))
}

func TestCurrentBalance_InsertionOrderIrrelevant(t *testing.T) {
	engine := testEngine()
	initial := decimal.NewFromInt(10000)

	forward := journal.New()
	forward.Upsert(tradedDay(t, "2025-01-10", 101.11))
	forward.Upsert(tradedDay(t, "2025-01-13", -50.55))
	forward.Upsert(tradedDay(t, "2025-01-14", 25.01))

	backward := journal.New()
	backward.Upsert(tradedDay(t, "2025-01-14", 25.01))
	backward.Upsert(tradedDay(t, "2025-01-13", -50.55))
	backward.Upsert(tradedDay(t, "2025-01-10", 101.11))

	assert.True(t, engine.CurrentBalance(forward, initial).Equal(engine.CurrentBalance(backward, initial)))
}

func TestBalanceSeries_MonthRange(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2024-12-30", 500)) // prior month, feeds the basis
	j.Upsert(tradedDay(t, "2025-01-02", 100))
	j.Upsert(restDay(t, "2025-01-03"))
	j.Upsert(tradedDay(t, "2025-01-06", -40))

	series := engine.BalanceSeries(j, decimal.NewFromInt(10000), day(t, "2025-01-01"), day(t, "2025-01-31"))
	require.Len(t, series, 2)

	assert.Equal(t, "10600", series[0].Balance.String())
	assert.Equal(t, "10560", series[1].Balance.String())
	assert.True(t, series[0].Date.Before(series[1].Date))
}

func TestBalanceSeries_CumulativeInvariant(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-02", 10.10))
	j.Upsert(tradedDay(t, "2025-01-03", -20.20))
	j.Upsert(tradedDay(t, "2025-01-06", 30.30))

	series := engine.BalanceSeries(j, decimal.NewFromInt(1000), day(t, "2025-01-01"), day(t, "2025-01-31"))
	require.Len(t, series, 3)

	for i := 1; i < len(series); i++ {
		expected := series[i-1].Balance.Add(series[i].PnL).Round(2)
		assert.True(t, series[i].Balance.Equal(expected), "point %d breaks the cumulative invariant", i)
	}
}
