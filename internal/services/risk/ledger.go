package riskservice

import (
	"time"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

// moneyScale is the fixed decimal scale applied after every summation
// boundary to keep long journals free of accumulated drift.
const moneyScale = 2

// CurrentBalance folds the journal into the trader's reconstructed
// capital: initial capital plus the realized P/L of every traded day.
// Days marked as not traded contribute nothing regardless of any stray
// pnl value. An empty journal returns the initial capital unchanged.
func (e *Engine) CurrentBalance(j journal.Journal, initialCapital decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range j.Sorted() {
		if !entry.HasTraded {
			continue
		}
		total = total.Add(entry.PnL)
	}
	return initialCapital.Add(total).Round(moneyScale)
}

// BalanceSeries returns the chronological per-day equity curve for traded
// days with from <= date <= to. The first point's basis is the initial
// capital plus all traded P/L recorded before the range.
func (e *Engine) BalanceSeries(j journal.Journal, initialCapital decimal.Decimal, from, to time.Time) []risk.BalancePoint {
	running := e.balanceBefore(j, initialCapital, from)

	var series []risk.BalancePoint
	for _, entry := range j.Between(from, to) {
		if !entry.HasTraded {
			continue
		}
		running = running.Add(entry.PnL).Round(moneyScale)
		series = append(series, risk.BalancePoint{
			Date:    entry.Date,
			Balance: running,
			PnL:     entry.PnL,
		})
	}
	return series
}

// balanceBefore reconstructs the balance as of the day before `day`
func (e *Engine) balanceBefore(j journal.Journal, initialCapital decimal.Decimal, day time.Time) decimal.Decimal {
	cutoff := journal.Day(day)

	total := decimal.Zero
	for _, entry := range j.Sorted() {
		if !entry.HasTraded || !journal.Day(entry.Date).Before(cutoff) {
			continue
		}
		total = total.Add(entry.PnL)
	}
	return initialCapital.Add(total).Round(moneyScale)
}
