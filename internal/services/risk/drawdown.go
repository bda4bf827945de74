package riskservice

import (
	"time"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

// ClassifyDrawdown replays the current month's traded days, tracks the
// running balance peak and the date it was set, and maps the decline from
// that peak to a protection tier. The peak is seeded with the balance the
// trader carried into the month, so a month that only loses still
// measures against its starting capital.
func (e *Engine) ClassifyDrawdown(j journal.Journal, initialCapital, currentBalance decimal.Decimal, asOf time.Time) risk.DrawdownState {
	monthStart := startOfMonth(asOf)

	peak := e.balanceBefore(j, initialCapital, monthStart)
	var peakDate time.Time

	running := peak
	for _, entry := range j.Between(monthStart, asOf) {
		if !entry.HasTraded {
			continue
		}
		running = running.Add(entry.PnL)
		if running.GreaterThan(peak) {
			peak = running
			peakDate = entry.Date
		}
	}
	peak = peak.Round(moneyScale)

	state := risk.DrawdownState{
		MonthlyPeak:    peak,
		PeakDate:       peakDate,
		CurrentBalance: currentBalance,
	}

	// Degenerate peak (zero or negative capital) reads as no drawdown
	// rather than propagating a division blow-up.
	if peak.IsPositive() {
		amount := peak.Sub(currentBalance)
		if amount.IsPositive() {
			state.Amount = amount.Round(moneyScale)
			state.Percent, _ = amount.Div(peak).Mul(decimal.NewFromInt(100)).Float64()
		}
	}

	tier := risk.Classify(state.Percent)
	state.Level = tier.Level
	state.RiskMultiplier = tier.RiskMultiplier
	state.Label = tier.Label
	state.Message = tier.Message

	if state.Percent > 0 && !peakDate.IsZero() {
		state.DaysInDrawdown = int(journal.Day(asOf).Sub(journal.Day(peakDate)).Hours() / 24)
	}

	if e.log != nil && state.Level != risk.LevelSafe {
		e.log.Warnw("Drawdown protection active",
			"level", state.Level,
			"drawdown_pct", state.Percent,
			"peak", peak.StringFixed(moneyScale),
			"balance", currentBalance.StringFixed(moneyScale),
		)
	}

	return state
}
