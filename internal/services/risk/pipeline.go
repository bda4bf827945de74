package riskservice

import (
	"time"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

// Snapshot is the complete derived state of one recomputation pass. All
// fields are value objects with the lifetime of the pass; nothing is
// persisted or carried between calls.
type Snapshot struct {
	AsOf time.Time

	CurrentBalance decimal.Decimal
	MonthSeries    []risk.BalancePoint

	Drawdown          risk.DrawdownState
	ConsecutiveLosses int
	Recommendation    risk.RecommendationState
	Positions         risk.PositionPlan

	// Day-planning helpers for the external advisor prompt
	BusinessDaysLeft      int
	RemainingGainToTarget decimal.Decimal
	MinDailyGain          decimal.Decimal
	RequiredWinRate       float64

	// Event is set when the protection level is caution or worse
	Event *risk.RiskEvent
}

// AdvisorInput extracts the validated subset handed to the AI advisor
func (s *Snapshot) AdvisorInput(settings risk.Settings) AdvisorInput {
	return AdvisorInput{
		Capital:         s.CurrentBalance,
		InitialCapital:  settings.InitialCapital,
		TradingDaysLeft: s.BusinessDaysLeft,
		RequiredWinRate: s.RequiredWinRate,
		AdjustedRiskPct: s.Recommendation.AdjustedRiskPct,
	}
}

// ComputeAll runs the whole pipeline over one journal and settings
// snapshot: ledger reduction, drawdown classification, loss-pattern
// detection, recommendation selection, and position sizing. It is
// deterministic and idempotent; two calls with identical inputs yield
// identical outputs (the emitted RiskEvent ID excepted).
func (e *Engine) ComputeAll(j journal.Journal, settings risk.Settings, asOf time.Time) *Snapshot {
	settings = settings.WithDefaults()

	balance := e.CurrentBalance(j, settings.InitialCapital)
	if settings.BalanceOverride != nil {
		balance = settings.BalanceOverride.Round(moneyScale)
	}

	drawdown := e.ClassifyDrawdown(j, settings.InitialCapital, balance, asOf)
	losses := e.ConsecutiveLosses(j)
	recommendation := e.Recommend(j, settings, drawdown, losses, asOf)
	positions := e.PositionSizes(balance, recommendation.AdjustedRiskPct, settings.DailyLossMaxPct, settings.StopLossTicks)

	daysLeft := e.BusinessDaysLeft(j, asOf)
	remaining := e.remainingGainToTarget(j, settings, asOf)

	minDaily := decimal.Zero
	if daysLeft > 0 {
		minDaily = remaining.Div(decimal.NewFromInt(int64(daysLeft))).Round(moneyScale)
	}

	avgWin, avgLoss := averageWinLoss(j)

	snapshot := &Snapshot{
		AsOf:                  asOf,
		CurrentBalance:        balance,
		MonthSeries:           e.BalanceSeries(j, settings.InitialCapital, startOfMonth(asOf), asOf),
		Drawdown:              drawdown,
		ConsecutiveLosses:     losses,
		Recommendation:        recommendation,
		Positions:             positions,
		BusinessDaysLeft:      daysLeft,
		RemainingGainToTarget: remaining,
		MinDailyGain:          minDaily,
		RequiredWinRate:       RequiredWinRate(remaining, daysLeft, avgWin, avgLoss),
		Event:                 risk.NewRiskEvent(drawdown, asOf),
	}

	if e.log != nil {
		e.log.Debugw("Pipeline recomputed",
			"balance", balance.StringFixed(moneyScale),
			"status", recommendation.Status,
			"protection_level", drawdown.Level,
			"instruments", len(positions.Recommendations),
		)
	}

	return snapshot
}

// remainingGainToTarget is the capital gain still needed this month to
// reach the monthly target, floored at zero once the target is met.
func (e *Engine) remainingGainToTarget(j journal.Journal, settings risk.Settings, asOf time.Time) decimal.Decimal {
	target := settings.InitialCapital.
		Mul(decimal.NewFromFloat(settings.MonthlyTargetPct)).
		Div(hundred)

	remaining := target.Sub(sumTradedPnL(j, startOfMonth(asOf), asOf))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining.Round(moneyScale)
}
