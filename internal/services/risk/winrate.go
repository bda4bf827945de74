package riskservice

import (
	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
)

// RequiredWinRate estimates the win percentage needed to close the
// remaining gap to the monthly target over the remaining sessions, given
// the trader's historical average win and average loss per day:
//
//	winRate = (remainingGain + tradesLeft*avgLoss) / (tradesLeft*(avgWin+avgLoss))
//
// clamped to [0,100]. A non-positive avgWin, avgLoss, or tradesLeft makes
// the estimate meaningless and returns 0.
func RequiredWinRate(remainingGain decimal.Decimal, tradesLeft int, avgWin, avgLoss decimal.Decimal) float64 {
	if tradesLeft <= 0 || !avgWin.IsPositive() || !avgLoss.IsPositive() {
		return 0
	}

	trades := decimal.NewFromInt(int64(tradesLeft))
	numerator := remainingGain.Add(trades.Mul(avgLoss))
	denominator := trades.Mul(avgWin.Add(avgLoss))

	rate, _ := numerator.Div(denominator).Mul(hundred).Float64()
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// averageWinLoss computes the mean winning day and the mean losing day
// (absolute value) across all traded journal entries. Flat days count for
// neither side.
func averageWinLoss(j journal.Journal) (avgWin, avgLoss decimal.Decimal) {
	winSum, lossSum := decimal.Zero, decimal.Zero
	wins, losses := 0, 0

	for _, entry := range j.Sorted() {
		if !entry.HasTraded {
			continue
		}
		switch {
		case entry.PnL.IsPositive():
			winSum = winSum.Add(entry.PnL)
			wins++
		case entry.PnL.IsNegative():
			lossSum = lossSum.Add(entry.PnL.Abs())
			losses++
		}
	}

	if wins > 0 {
		avgWin = winSum.Div(decimal.NewFromInt(int64(wins))).Round(moneyScale)
	}
	if losses > 0 {
		avgLoss = lossSum.Div(decimal.NewFromInt(int64(losses))).Round(moneyScale)
	}
	return avgWin, avgLoss
}
