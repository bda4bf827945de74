package risk

import (
	"github.com/shopspring/decimal"
)

// ContractSpec holds the static per-instrument constants needed to turn a
// dollar risk budget into a whole number of futures contracts.
type ContractSpec struct {
	Symbol            string
	Name              string
	MarginPerContract decimal.Decimal
	TickValue         decimal.Decimal
	TickSize          float64
	Multiplier        float64
	Category          string // "micro" or "standard"
}

// PositionRecommendation is the sized result for one instrument
type PositionRecommendation struct {
	Symbol      string
	Contracts   int64
	TotalRisk   decimal.Decimal
	TotalMargin decimal.Decimal
	RiskPct     float64
	MarginPct   float64
}

// PayoffLadder is the projected profit for the top-ranked instrument at
// fixed reward multiples of the risked amount.
type PayoffLadder struct {
	OneToOne   decimal.Decimal
	OneToTwo   decimal.Decimal
	OneToThree decimal.Decimal
}

// PositionPlan is the full sizing output of one pass: instruments ranked
// by recommended contracts, the shared trades-per-day budget, and the
// payoff ladder for the best-ranked instrument (nil when nothing sizes).
type PositionPlan struct {
	Recommendations []PositionRecommendation
	MaxTradesPerDay int64
	Payoffs         *PayoffLadder
}
