package risk

import (
	"github.com/shopspring/decimal"
)

// Documented defaults applied when a settings field is missing (zero)
const (
	DefaultRiskPerTradePct  = 1.0
	DefaultDailyLossMaxPct  = 3.0
	DefaultWeeklyTargetPct  = 2.0
	DefaultMonthlyTargetPct = 8.0
	DefaultStopLossTicks    = 20
)

// Settings carries the user-configured risk parameters. The engine treats
// it as read-only input for a single recomputation pass.
type Settings struct {
	InitialCapital decimal.Decimal

	// BalanceOverride, when set, replaces the reconstructed balance.
	// Used for manual corrections of the ledger.
	BalanceOverride *decimal.Decimal

	RiskPerTradePct  float64
	DailyLossMaxPct  float64
	WeeklyTargetPct  float64
	MonthlyTargetPct float64
	SecureMode       bool

	// StopLossTicks is the planned stop distance used for position sizing
	StopLossTicks int
}

// WithDefaults returns a copy with zero numeric fields replaced by the
// documented defaults. InitialCapital is left as supplied; a zero capital
// degrades to empty recommendations rather than erroring.
func (s Settings) WithDefaults() Settings {
	if s.RiskPerTradePct == 0 {
		s.RiskPerTradePct = DefaultRiskPerTradePct
	}
	if s.DailyLossMaxPct == 0 {
		s.DailyLossMaxPct = DefaultDailyLossMaxPct
	}
	if s.WeeklyTargetPct == 0 {
		s.WeeklyTargetPct = DefaultWeeklyTargetPct
	}
	if s.MonthlyTargetPct == 0 {
		s.MonthlyTargetPct = DefaultMonthlyTargetPct
	}
	if s.StopLossTicks == 0 {
		s.StopLossTicks = DefaultStopLossTicks
	}
	return s
}
