package risk

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProtectionLevel is the discrete severity tier derived from the current
// drawdown against the monthly peak.
type ProtectionLevel string

const (
	LevelSafe      ProtectionLevel = "safe"
	LevelCaution   ProtectionLevel = "caution"
	LevelWarning   ProtectionLevel = "warning"
	LevelDanger    ProtectionLevel = "danger"
	LevelEmergency ProtectionLevel = "emergency"
)

// Severity returns a rank for ordering levels, higher is worse
func (l ProtectionLevel) Severity() int {
	switch l {
	case LevelCaution:
		return 1
	case LevelWarning:
		return 2
	case LevelDanger:
		return 3
	case LevelEmergency:
		return 4
	default:
		return 0
	}
}

// Tier binds a drawdown threshold to a protection level and the risk
// multiplier applied while that level is active.
type Tier struct {
	MinDrawdownPct float64
	Level          ProtectionLevel
	RiskMultiplier float64
	Label          string
	Message        string
}

// Tiers is the protection ladder, worst first. Classification walks the
// ladder and takes the first threshold the drawdown reaches.
var Tiers = []Tier{
	{
		MinDrawdownPct: 8.0,
		Level:          LevelEmergency,
		RiskMultiplier: 0.2,
		Label:          "EMERGENCY",
		Message:        "Capital protection engaged. Stop trading and review every open rule before the next session.",
	},
	{
		MinDrawdownPct: 5.0,
		Level:          LevelDanger,
		RiskMultiplier: 0.3,
		Label:          "DANGER",
		Message:        "Severe drawdown from the monthly peak. Cut size hard and trade only A+ setups.",
	},
	{
		MinDrawdownPct: 3.0,
		Level:          LevelWarning,
		RiskMultiplier: 0.6,
		Label:          "WARNING",
		Message:        "Drawdown is deepening. Reduce risk and slow down.",
	},
	{
		MinDrawdownPct: 1.5,
		Level:          LevelCaution,
		RiskMultiplier: 0.8,
		Label:          "CAUTION",
		Message:        "Mild drawdown from the monthly peak. Stay selective.",
	},
}

// Classify maps a drawdown percentage to its tier. Returns the safe tier
// when no threshold is reached.
func Classify(drawdownPct float64) Tier {
	for _, tier := range Tiers {
		if drawdownPct >= tier.MinDrawdownPct {
			return tier
		}
	}
	return Tier{Level: LevelSafe, RiskMultiplier: 1.0, Label: "SAFE"}
}

// BalancePoint is one day of the reconstructed equity curve
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
	PnL     decimal.Decimal
}

// DrawdownState describes the decline from the monthly peak and the
// protection tier it maps to. Recomputed in full on every pass.
type DrawdownState struct {
	MonthlyPeak    decimal.Decimal
	PeakDate       time.Time
	CurrentBalance decimal.Decimal
	Amount         decimal.Decimal
	Percent        float64
	Level          ProtectionLevel
	RiskMultiplier float64
	DaysInDrawdown int
	Label          string
	Message        string
}
