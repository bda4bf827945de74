package riskservice

import (
	"sort"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/risk"
)

var hundred = decimal.NewFromInt(100)

// PositionSizes converts the effective risk percentage into whole
// contract counts per instrument, bound simultaneously by the per-trade
// risk budget and the margin budget. Instruments that size to zero are
// dropped; the rest are ranked by contract count with table order
// breaking ties. A non-positive capital or stop distance yields an empty
// plan rather than an error: the engine is advisory, not transactional.
func (e *Engine) PositionSizes(capital decimal.Decimal, effectiveRiskPct, dailyLossMaxPct float64, stopLossTicks int) risk.PositionPlan {
	var plan risk.PositionPlan
	if stopLossTicks <= 0 || !capital.IsPositive() {
		return plan
	}

	maxRiskPerTrade := capital.Mul(decimal.NewFromFloat(effectiveRiskPct)).Div(hundred)
	maxDailyLoss := capital.Mul(decimal.NewFromFloat(dailyLossMaxPct)).Div(hundred)
	ticks := decimal.NewFromInt(int64(stopLossTicks))

	for _, spec := range e.contracts {
		lossPerContract := ticks.Mul(spec.TickValue)
		if !lossPerContract.IsPositive() || !spec.MarginPerContract.IsPositive() {
			continue
		}

		maxByRisk := maxRiskPerTrade.Div(lossPerContract).Floor().IntPart()
		maxByMargin := capital.Div(spec.MarginPerContract).Floor().IntPart()

		recommended := maxByRisk
		if maxByMargin < recommended {
			recommended = maxByMargin
		}
		if recommended <= 0 {
			continue
		}

		contracts := decimal.NewFromInt(recommended)
		totalRisk := lossPerContract.Mul(contracts).Round(moneyScale)
		totalMargin := spec.MarginPerContract.Mul(contracts).Round(moneyScale)

		plan.Recommendations = append(plan.Recommendations, risk.PositionRecommendation{
			Symbol:      spec.Symbol,
			Contracts:   recommended,
			TotalRisk:   totalRisk,
			TotalMargin: totalMargin,
			RiskPct:     percentOf(totalRisk, capital),
			MarginPct:   percentOf(totalMargin, capital),
		})
	}

	sort.SliceStable(plan.Recommendations, func(a, b int) bool {
		return plan.Recommendations[a].Contracts > plan.Recommendations[b].Contracts
	})

	// A zero per-trade budget would divide by zero; the day budget is
	// simply no trades in that case.
	if maxRiskPerTrade.IsPositive() {
		plan.MaxTradesPerDay = maxDailyLoss.Div(maxRiskPerTrade).Floor().IntPart()
	}

	if len(plan.Recommendations) > 0 {
		topRisk := plan.Recommendations[0].TotalRisk
		plan.Payoffs = &risk.PayoffLadder{
			OneToOne:   topRisk,
			OneToTwo:   topRisk.Mul(decimal.NewFromInt(2)),
			OneToThree: topRisk.Mul(decimal.NewFromInt(3)),
		}
	}

	return plan
}
