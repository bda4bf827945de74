package riskservice

import (
	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
)

// patternLookback bounds the losing-streak scan to the most recent
// traded sessions.
const patternLookback = 5

// ConsecutiveLosses counts the run of non-winning traded days (pnl <= 0)
// ending at the most recent session, stopping at the first winning day or
// after patternLookback entries.
func (e *Engine) ConsecutiveLosses(j journal.Journal) int {
	losses := 0
	for _, entry := range j.RecentTraded(patternLookback) {
		if entry.PnL.GreaterThan(decimal.Zero) {
			break
		}
		losses++
	}
	return losses
}
