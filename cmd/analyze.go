package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"smartrisk/internal/metrics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full risk pipeline and print the recommendation",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	engine, j, settings, err := loadInputs()
	if err != nil {
		return err
	}

	started := time.Now()
	snap := engine.ComputeAll(j, settings, time.Now())
	metrics.RecordPipelineRun(
		string(snap.Recommendation.Status),
		time.Since(started),
		snap.Drawdown.Percent,
		snap.Drawdown.Level.Severity(),
	)

	fmt.Printf("Balance:         %s\n", money(snap.CurrentBalance))
	fmt.Printf("Monthly peak:    %s\n", money(snap.Drawdown.MonthlyPeak))
	fmt.Printf("Drawdown:        %.2f%% (%s, %d days)\n",
		snap.Drawdown.Percent, snap.Drawdown.Label, snap.Drawdown.DaysInDrawdown)
	fmt.Printf("Status:          %s\n", snap.Recommendation.Status)
	fmt.Printf("Effective risk:  %.2f%% per trade\n", snap.Recommendation.AdjustedRiskPct)
	fmt.Printf("Week progress:   %.0f%% of target\n", snap.Recommendation.WeekProgress)
	fmt.Printf("Month progress:  %.0f%% of target\n", snap.Recommendation.MonthProgress)
	fmt.Println()
	fmt.Println(snap.Recommendation.Message)
	for _, s := range snap.Recommendation.Suggestions {
		fmt.Printf("  - %s\n", s)
	}

	fmt.Println()
	fmt.Printf("Sessions left this month: %d\n", snap.BusinessDaysLeft)
	fmt.Printf("Remaining gain to target: %s\n", money(snap.RemainingGainToTarget))
	fmt.Printf("Minimum daily gain:       %s\n", money(snap.MinDailyGain))
	if snap.RequiredWinRate > 0 {
		fmt.Printf("Required win rate:        %.1f%%\n", snap.RequiredWinRate)
	}

	if snap.Event != nil {
		fmt.Printf("\n[%s] %s\n", snap.Event.Severity, snap.Event.Message)
	}

	return nil
}

func money(d decimal.Decimal) string {
	v, _ := d.Float64()
	return "$" + humanize.CommafWithDigits(v, 2)
}
