package riskservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"smartrisk/internal/domain/journal"
)

func TestRequiredWinRate_BalancedWinLoss(t *testing.T) {
	// Need $500 over 10 sessions, avg win = avg loss = 100:
	// (500 + 10*100) / (10*200) = 75%
	rate := RequiredWinRate(decimal.NewFromInt(500), 10, decimal.NewFromInt(100), decimal.NewFromInt(100))
	assert.InDelta(t, 75.0, rate, 0.0001)
}

func TestRequiredWinRate_TargetAlreadyMet(t *testing.T) {
	// No remaining gain: rate collapses to the break-even fraction
	rate := RequiredWinRate(decimal.Zero, 10, decimal.NewFromInt(100), decimal.NewFromInt(100))
	assert.InDelta(t, 50.0, rate, 0.0001)
}

func TestRequiredWinRate_ClampedToHundred(t *testing.T) {
	rate := RequiredWinRate(decimal.NewFromInt(100000), 2, decimal.NewFromInt(50), decimal.NewFromInt(50))
	assert.Equal(t, 100.0, rate)
}

func TestRequiredWinRate_DegenerateInputsReturnZero(t *testing.T) {
	win := decimal.NewFromInt(100)
	loss := decimal.NewFromInt(100)
	gain := decimal.NewFromInt(500)

	assert.Zero(t, RequiredWinRate(gain, 0, win, loss))
	assert.Zero(t, RequiredWinRate(gain, -3, win, loss))
	assert.Zero(t, RequiredWinRate(gain, 10, decimal.Zero, loss))
	assert.Zero(t, RequiredWinRate(gain, 10, win, decimal.Zero))
	assert.Zero(t, RequiredWinRate(gain, 10, win.Neg(), loss))
}

func TestAverageWinLoss(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 100))
	j.Upsert(tradedDay(t, "2025-01-07", 300))
	j.Upsert(tradedDay(t, "2025-01-08", -50))
	j.Upsert(tradedDay(t, "2025-01-09", 0)) // flat day counts for neither side
	j.Upsert(restDay(t, "2025-01-10"))

	avgWin, avgLoss := averageWinLoss(j)
	assert.Equal(t, "200.00", avgWin.StringFixed(2))
	assert.Equal(t, "50.00", avgLoss.StringFixed(2))
}

func TestAverageWinLoss_EmptyJournal(t *testing.T) {
	avgWin, avgLoss := averageWinLoss(journal.New())
	assert.True(t, avgWin.IsZero())
	assert.True(t, avgLoss.IsZero())
}
