package risk

// Status is the single prioritized recommendation state for a pass.
// Exactly one status is active per recomputation; downstream consumers
// (dashboard, advisor prompt builder) key off these exact strings.
type Status string

const (
	StatusEmergency       Status = "emergency"
	StatusDanger          Status = "danger"
	StatusPatternWarning  Status = "pattern_warning"
	StatusMonthlyAchieved Status = "monthly_achieved"
	StatusWeeklyAchieved  Status = "weekly_achieved"
	StatusNormal          Status = "normal"
)

// StatusMessages is the fixed headline per status
var StatusMessages = map[Status]string{
	StatusEmergency:       "Emergency stop. The monthly drawdown limit is breached; step away from the screens.",
	StatusDanger:          "Danger zone. Drawdown is severe; trade minimum size or not at all.",
	StatusPatternWarning:  "Losing streak detected. Break the pattern before it breaks the account.",
	StatusMonthlyAchieved: "Monthly target reached. Capital preservation mode until next month.",
	StatusWeeklyAchieved:  "Weekly target reached. Protect the gains for the rest of the week.",
	StatusNormal:          "On track. Follow the plan and keep risk per trade constant.",
}

// StatusSuggestions is the fixed ordered guidance list per status
var StatusSuggestions = map[Status][]string{
	StatusEmergency: {
		"Stop trading for today, no exceptions",
		"Journal what went wrong this month before the next session",
		"Resume only at minimum size after two green days on sim",
	},
	StatusDanger: {
		"Cut position size to the minimum contract",
		"Take only your highest-probability setup",
		"Set a hard stop on the day at one losing trade",
	},
	StatusPatternWarning: {
		"Take a break after the next trade, win or lose",
		"Halve your size until you book a winning day",
		"Review the last five sessions for a repeated mistake",
	},
	StatusMonthlyAchieved: {
		"Reduce size drastically, the month is already won",
		"Trade only to stay sharp, not to add P/L",
		"Bank the excess over your target mentally and defend it",
	},
	StatusWeeklyAchieved: {
		"Scale down for the remainder of the week",
		"Avoid revenge-extending a winning week into a losing one",
	},
	StatusNormal: {
		"Risk the planned fraction per trade, never more",
		"Respect the daily loss limit",
		"Log every session, traded or not",
	},
}

// RecommendationState is the engine's prioritized verdict for one pass
type RecommendationState struct {
	Status          Status
	RiskAdjustment  float64
	AdjustedRiskPct float64
	Message         string
	Suggestions     []string

	// Progress toward the weekly and monthly targets, percent of target
	WeekProgress  float64
	MonthProgress float64

	WeeklyPnLPct  float64
	MonthlyPnLPct float64
}
