package riskservice

import (
	"github.com/shopspring/decimal"

	"smartrisk/pkg/errors"
)

// AdvisorInput is the slice of a snapshot handed to the external AI
// advisor. A malformed value here would corrupt a paid API call, so this
// is the one place the engine fails loudly instead of degrading.
type AdvisorInput struct {
	Capital         decimal.Decimal
	InitialCapital  decimal.Decimal
	TradingDaysLeft int
	RequiredWinRate float64
	AdjustedRiskPct float64
}

// ValidateAdvisorInput checks every field and returns a single error
// enumerating all failures, or nil when the input is fit for the
// external call.
func ValidateAdvisorInput(in AdvisorInput) error {
	multi := &errors.MultiError{}

	if !in.Capital.IsPositive() {
		multi.Add(errors.NewValidationError("capital", "must be positive", in.Capital))
	}
	if !in.InitialCapital.IsPositive() {
		multi.Add(errors.NewValidationError("initial_capital", "must be positive", in.InitialCapital))
	}
	if in.TradingDaysLeft < 0 {
		multi.Add(errors.NewValidationError("trading_days_left", "must not be negative", in.TradingDaysLeft))
	}
	if in.RequiredWinRate < 0 || in.RequiredWinRate > 100 {
		multi.Add(errors.NewValidationError("required_win_rate", "must be between 0 and 100", in.RequiredWinRate))
	}
	if in.AdjustedRiskPct <= 0 || in.AdjustedRiskPct > 100 {
		multi.Add(errors.NewValidationError("adjusted_risk_pct", "must be in (0, 100]", in.AdjustedRiskPct))
	}

	return multi.ToError()
}
