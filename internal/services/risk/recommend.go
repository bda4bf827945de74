package riskservice

import (
	"time"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
)

// patternThreshold is the losing streak length that triggers the
// pattern_warning status.
const patternThreshold = 3

// secureModeFactor halves the effective risk when secure mode is on
const secureModeFactor = 0.5

// ruleInput is everything a status rule may inspect
type ruleInput struct {
	drawdown          risk.DrawdownState
	consecutiveLosses int
	weeklyPnLPct      float64
	monthlyPnLPct     float64
	weeklyTargetPct   float64
	monthlyTargetPct  float64
}

// statusRule binds a predicate to a status and its risk adjustment.
// Priority is the slice order, first match wins; inserting a new tier is
// a positional edit, not a control-flow rewrite.
type statusRule struct {
	status     risk.Status
	matches    func(ruleInput) bool
	adjustment func(ruleInput) float64
}

var statusRules = []statusRule{
	{
		status:     risk.StatusEmergency,
		matches:    func(in ruleInput) bool { return in.drawdown.Level == risk.LevelEmergency },
		adjustment: func(in ruleInput) float64 { return 0.2 },
	},
	{
		status:     risk.StatusDanger,
		matches:    func(in ruleInput) bool { return in.drawdown.Level == risk.LevelDanger },
		adjustment: func(in ruleInput) float64 { return in.drawdown.RiskMultiplier },
	},
	{
		status:     risk.StatusPatternWarning,
		matches:    func(in ruleInput) bool { return in.consecutiveLosses >= patternThreshold },
		adjustment: func(in ruleInput) float64 { return 0.5 },
	},
	{
		status:     risk.StatusMonthlyAchieved,
		matches:    func(in ruleInput) bool { return in.monthlyPnLPct >= in.monthlyTargetPct },
		adjustment: func(in ruleInput) float64 { return 0.2 },
	},
	{
		status:     risk.StatusWeeklyAchieved,
		matches:    func(in ruleInput) bool { return in.weeklyPnLPct >= in.weeklyTargetPct },
		adjustment: func(in ruleInput) float64 { return 0.4 },
	},
	{
		status:     risk.StatusNormal,
		matches:    func(in ruleInput) bool { return true },
		adjustment: func(in ruleInput) float64 { return in.drawdown.RiskMultiplier },
	},
}

// Recommend selects the single active status for this pass and derives
// the effective per-trade risk from it. Statuses are mutually exclusive
// and totally ordered; the drawdown multiplier only feeds the danger and
// normal branches, it is never stacked on the other adjustments.
func (e *Engine) Recommend(j journal.Journal, s risk.Settings, drawdown risk.DrawdownState, consecutiveLosses int, asOf time.Time) risk.RecommendationState {
	weeklyPnL := sumTradedPnL(j, startOfISOWeek(asOf), asOf)
	monthlyPnL := sumTradedPnL(j, startOfMonth(asOf), asOf)

	in := ruleInput{
		drawdown:          drawdown,
		consecutiveLosses: consecutiveLosses,
		weeklyPnLPct:      percentOf(weeklyPnL, s.InitialCapital),
		monthlyPnLPct:     percentOf(monthlyPnL, s.InitialCapital),
		weeklyTargetPct:   s.WeeklyTargetPct,
		monthlyTargetPct:  s.MonthlyTargetPct,
	}

	var state risk.RecommendationState
	for _, rule := range statusRules {
		if !rule.matches(in) {
			continue
		}
		state.Status = rule.status
		state.RiskAdjustment = rule.adjustment(in)
		break
	}

	state.AdjustedRiskPct = s.RiskPerTradePct * state.RiskAdjustment
	if s.SecureMode {
		state.AdjustedRiskPct *= secureModeFactor
	}

	state.Message = risk.StatusMessages[state.Status]
	state.Suggestions = risk.StatusSuggestions[state.Status]
	state.WeeklyPnLPct = in.weeklyPnLPct
	state.MonthlyPnLPct = in.monthlyPnLPct
	state.WeekProgress = progress(in.weeklyPnLPct, s.WeeklyTargetPct)
	state.MonthProgress = progress(in.monthlyPnLPct, s.MonthlyTargetPct)

	if e.log != nil {
		switch state.Status {
		case risk.StatusEmergency, risk.StatusDanger, risk.StatusPatternWarning:
			e.log.Warnw("Risk circuit condition selected",
				"status", state.Status,
				"risk_adjustment", state.RiskAdjustment,
				"consecutive_losses", consecutiveLosses,
				"drawdown_pct", drawdown.Percent,
			)
		default:
			e.log.Debugw("Recommendation computed",
				"status", state.Status,
				"adjusted_risk_pct", state.AdjustedRiskPct,
			)
		}
	}

	return state
}

// sumTradedPnL sums journal P/L for traded days in [from, to]
func sumTradedPnL(j journal.Journal, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range j.Between(from, to) {
		if !entry.HasTraded {
			continue
		}
		total = total.Add(entry.PnL)
	}
	return total.Round(moneyScale)
}

// percentOf expresses amount as a percentage of base, 0 on a degenerate base
func percentOf(amount, base decimal.Decimal) float64 {
	if !base.IsPositive() {
		return 0
	}
	pct, _ := amount.Div(base).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// progress maps achieved percent against target percent to 0..n percent
// of target, floored at zero for losing periods
func progress(achievedPct, targetPct float64) float64 {
	if targetPct <= 0 {
		return 0
	}
	p := achievedPct / targetPct * 100
	if p < 0 {
		return 0
	}
	return p
}
