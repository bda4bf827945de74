package riskservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

func TestComputeAll_FreshMonth(t *testing.T) {
	engine := testEngine()
	snap := engine.ComputeAll(journal.New(), testSettings(), day(t, "2025-01-15"))

	assert.Equal(t, "10000.00", snap.CurrentBalance.StringFixed(2))
	assert.Equal(t, risk.LevelSafe, snap.Drawdown.Level)
	assert.Equal(t, risk.StatusNormal, snap.Recommendation.Status)
	assert.InDelta(t, 1.0, snap.Recommendation.AdjustedRiskPct, 0.0001)
	assert.Zero(t, snap.ConsecutiveLosses)
	assert.Nil(t, snap.Event)

	// Full monthly target still outstanding: 8% of 10000
	assert.Equal(t, "800.00", snap.RemainingGainToTarget.StringFixed(2))
	assert.Equal(t, 13, snap.BusinessDaysLeft)
	assert.Equal(t, "61.54", snap.MinDailyGain.StringFixed(2))
	// No trade history, so no win-rate estimate
	assert.Zero(t, snap.RequiredWinRate)
}

func TestComputeAll_MonthlyTargetReached(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 500))
	j.Upsert(tradedDay(t, "2025-01-08", 400))

	engine := testEngine()
	snap := engine.ComputeAll(j, testSettings(), day(t, "2025-01-15"))

	assert.Equal(t, "10900.00", snap.CurrentBalance.StringFixed(2))
	assert.Equal(t, risk.StatusMonthlyAchieved, snap.Recommendation.Status)
	assert.InDelta(t, 0.2, snap.Recommendation.AdjustedRiskPct, 0.0001)
	assert.True(t, snap.RemainingGainToTarget.IsZero())
	assert.True(t, snap.MinDailyGain.IsZero())
	assert.Zero(t, snap.RequiredWinRate)
}

func TestComputeAll_DrawdownEmitsEvent(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 200))
	j.Upsert(tradedDay(t, "2025-01-07", -600))

	engine := testEngine()
	snap := engine.ComputeAll(j, testSettings(), day(t, "2025-01-15"))

	// 600 off a 10200 peak is ~5.88%: danger tier
	assert.Equal(t, risk.LevelDanger, snap.Drawdown.Level)
	require.NotNil(t, snap.Event)
	assert.Equal(t, risk.LevelDanger, snap.Event.Level)
	assert.Equal(t, "critical", snap.Event.Severity)
	assert.False(t, snap.Event.Timestamp.IsZero())
}

func TestComputeAll_BalanceOverride(t *testing.T) {
	override := decimal.NewFromFloat(12345.678)
	settings := testSettings()
	settings.BalanceOverride = &override

	engine := testEngine()
	snap := engine.ComputeAll(journal.New(), settings, day(t, "2025-01-15"))

	assert.Equal(t, "12345.68", snap.CurrentBalance.StringFixed(2))
}

func TestComputeAll_Idempotent(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 150))
	j.Upsert(tradedDay(t, "2025-01-07", -300))
	j.Upsert(tradedDay(t, "2025-01-08", -120))
	j.Upsert(restDay(t, "2025-01-09"))

	engine := testEngine()
	asOf := day(t, "2025-01-15")
	first := engine.ComputeAll(j, testSettings(), asOf)
	second := engine.ComputeAll(j, testSettings(), asOf)

	// The event carries a fresh ID each pass; everything else is
	// a pure function of the inputs.
	if first.Event != nil {
		require.NotNil(t, second.Event)
		second.Event.ID = first.Event.ID
	}
	assert.Equal(t, first, second)
}

func TestComputeAll_MonthSeriesMatchesBalance(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2024-12-30", 250))
	j.Upsert(tradedDay(t, "2025-01-06", 100))
	j.Upsert(tradedDay(t, "2025-01-10", -40))

	engine := testEngine()
	snap := engine.ComputeAll(j, testSettings(), day(t, "2025-01-15"))

	require.Len(t, snap.MonthSeries, 2)
	last := snap.MonthSeries[len(snap.MonthSeries)-1]
	assert.True(t, last.Balance.Equal(snap.CurrentBalance))
}

func TestSnapshot_AdvisorInputValidates(t *testing.T) {
	j := journal.New()
	j.Upsert(tradedDay(t, "2025-01-06", 120))
	j.Upsert(tradedDay(t, "2025-01-07", -80))

	engine := testEngine()
	settings := testSettings()
	snap := engine.ComputeAll(j, settings, day(t, "2025-01-15"))

	in := snap.AdvisorInput(settings)
	assert.NoError(t, ValidateAdvisorInput(in))
	assert.True(t, in.Capital.Equal(snap.CurrentBalance))
	assert.Equal(t, snap.BusinessDaysLeft, in.TradingDaysLeft)
}
