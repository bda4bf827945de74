package riskservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

func TestClassifyDrawdown_NinePercentIsEmergency(t *testing.T) {
	engine := testEngine()

	// Peak 10000 set mid-month, balance then bleeds to 9100: 9% drawdown
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 0))
	j.Upsert(tradedDay(t, "2025-01-08", -900))

	state := engine.ClassifyDrawdown(j, decimal.NewFromInt(10000), decimal.NewFromInt(9100), day(t, "2025-01-15"))

	assert.InDelta(t, 9.0, state.Percent, 0.0001)
	assert.Equal(t, risk.LevelEmergency, state.Level)
	assert.Equal(t, 0.2, state.RiskMultiplier)
	assert.Equal(t, "900.00", state.Amount.StringFixed(2))
}

func TestClassifyDrawdown_PeakTracksRunningMaximum(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-02", 300))
	j.Upsert(tradedDay(t, "2025-01-03", 200)) // peak 10500
	j.Upsert(tradedDay(t, "2025-01-06", -400))

	balance := engine.CurrentBalance(j, decimal.NewFromInt(10000))
	state := engine.ClassifyDrawdown(j, decimal.NewFromInt(10000), balance, day(t, "2025-01-08"))

	assert.Equal(t, "10500.00", state.MonthlyPeak.StringFixed(2))
	assert.Equal(t, day(t, "2025-01-03"), state.PeakDate)
	assert.Equal(t, 5, state.DaysInDrawdown)
	assert.Equal(t, risk.LevelWarning, state.Level) // 400/10500 = 3.8%
}

func TestClassifyDrawdown_PriorMonthGainsSeedTheBasis(t *testing.T) {
	engine := testEngine()

	// December gained 1000; January starts from 11000 and loses 600.
	j := journal.New()
	j.Upsert(tradedDay(t, "2024-12-20", 1000))
	j.Upsert(tradedDay(t, "2025-01-06", -600))

	balance := engine.CurrentBalance(j, decimal.NewFromInt(10000))
	state := engine.ClassifyDrawdown(j, decimal.NewFromInt(10000), balance, day(t, "2025-01-10"))

	assert.Equal(t, "11000.00", state.MonthlyPeak.StringFixed(2))
	// 600/11000 = 5.45% -> danger
	assert.Equal(t, risk.LevelDanger, state.Level)
	// no January balance ever exceeded the basis, so no peak date recorded
	assert.True(t, state.PeakDate.IsZero())
	assert.Equal(t, 0, state.DaysInDrawdown)
}

func TestClassifyDrawdown_NoDrawdownIsSafe(t *testing.T) {
	engine := testEngine()

	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 250))

	balance := engine.CurrentBalance(j, decimal.NewFromInt(10000))
	state := engine.ClassifyDrawdown(j, decimal.NewFromInt(10000), balance, day(t, "2025-01-08"))

	assert.Equal(t, risk.LevelSafe, state.Level)
	assert.Equal(t, 1.0, state.RiskMultiplier)
	assert.Zero(t, state.Percent)
	assert.Equal(t, 0, state.DaysInDrawdown)
}

func TestClassifyDrawdown_ZeroCapitalDoesNotDivide(t *testing.T) {
	engine := testEngine()

	state := engine.ClassifyDrawdown(journal.New(), decimal.Zero, decimal.Zero, day(t, "2025-01-15"))
	assert.Equal(t, risk.LevelSafe, state.Level)
	assert.Zero(t, state.Percent)
}

func TestClassify_ThresholdLadder(t *testing.T) {
	cases := []struct {
		drawdownPct float64
		level       risk.ProtectionLevel
		multiplier  float64
	}{
		{0, risk.LevelSafe, 1.0},
		{1.49, risk.LevelSafe, 1.0},
		{1.5, risk.LevelCaution, 0.8},
		{2.99, risk.LevelCaution, 0.8},
		{3.0, risk.LevelWarning, 0.6},
		{4.99, risk.LevelWarning, 0.6},
		{5.0, risk.LevelDanger, 0.3},
		{7.99, risk.LevelDanger, 0.3},
		{8.0, risk.LevelEmergency, 0.2},
		{25.0, risk.LevelEmergency, 0.2},
	}

	for _, tc := range cases {
		tier := risk.Classify(tc.drawdownPct)
		assert.Equal(t, tc.level, tier.Level, "drawdown %.2f%%", tc.drawdownPct)
		assert.Equal(t, tc.multiplier, tier.RiskMultiplier, "drawdown %.2f%%", tc.drawdownPct)
	}
}

func TestClassify_SeverityNeverDecreasesWithDrawdown(t *testing.T) {
	prev := 0
	for pct := 0.0; pct <= 12.0; pct += 0.1 {
		severity := risk.Classify(pct).Level.Severity()
		assert.GreaterOrEqual(t, severity, prev, "severity regressed at %.1f%%", pct)
		prev = severity
	}
}
