package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Print the ranked position table for the current risk budget",
	Args:  cobra.NoArgs,
	RunE:  runPositions,
}

var stopTicksFlag int

func init() {
	positionsCmd.Flags().IntVar(&stopTicksFlag, "stop-ticks", 0, "stop-loss distance in ticks (default: configured value)")
	rootCmd.AddCommand(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	engine, j, settings, err := loadInputs()
	if err != nil {
		return err
	}
	if stopTicksFlag > 0 {
		settings.StopLossTicks = stopTicksFlag
	}

	snap := engine.ComputeAll(j, settings, time.Now())
	plan := snap.Positions

	if len(plan.Recommendations) == 0 {
		fmt.Println("No instrument fits the current risk budget.")
		return nil
	}

	fmt.Printf("Capital %s, effective risk %.2f%%, stop %d ticks\n\n",
		money(snap.CurrentBalance), snap.Recommendation.AdjustedRiskPct, settings.StopLossTicks)

	fmt.Printf("%-6s %9s %12s %12s %8s %8s\n",
		"SYMBOL", "CONTRACTS", "RISK", "MARGIN", "RISK%", "MARGIN%")
	for _, rec := range plan.Recommendations {
		fmt.Printf("%-6s %9d %12s %12s %7.2f%% %7.2f%%\n",
			rec.Symbol, rec.Contracts, money(rec.TotalRisk), money(rec.TotalMargin),
			rec.RiskPct, rec.MarginPct)
	}

	fmt.Printf("\nMax trades per day: %d\n", plan.MaxTradesPerDay)
	if plan.Payoffs != nil {
		fmt.Printf("Top instrument payoff  1:1 %s   1:2 %s   1:3 %s\n",
			money(plan.Payoffs.OneToOne), money(plan.Payoffs.OneToTwo), money(plan.Payoffs.OneToThree))
	}

	return nil
}
