package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	riskservice "smartrisk/internal/services/risk"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the current snapshot is fit for the external advisor",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	engine, j, settings, err := loadInputs()
	if err != nil {
		return err
	}

	snap := engine.ComputeAll(j, settings, time.Now())

	if err := riskservice.ValidateAdvisorInput(snap.AdvisorInput(settings)); err != nil {
		return err
	}

	fmt.Println("Snapshot is valid for advisor handoff.")
	return nil
}
