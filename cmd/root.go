package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"smartrisk/internal/adapters/config"
	"smartrisk/internal/adapters/contracts"
	"smartrisk/internal/adapters/errors/noop"
	"smartrisk/internal/adapters/errors/sentry"
	"smartrisk/internal/adapters/journalfile"
	"smartrisk/internal/domain/journal"
	"smartrisk/internal/domain/risk"
	"smartrisk/internal/metrics"
	riskservice "smartrisk/internal/services/risk"
	"smartrisk/pkg/errors"
	"smartrisk/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "smartrisk",
	Short: "Risk-governance engine for discretionary futures traders",
	Long: `Smartrisk reconstructs your capital from a daily P/L journal, classifies
the drawdown against the rolling monthly peak, derives a risk-adjusted
recommendation for the next trade, and sizes futures positions under both
a risk budget and a margin budget.

It places no orders and fetches no market data; it reads your journal,
does the arithmetic, and tells you how much you may risk today.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

var (
	cfg *config.Config
	log *logger.Logger
)

func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return errors.Wrap(err, "init logger")
	}
	log = logger.Get()

	logger.SetErrorTracker(initErrorTracker())
	metrics.Init()

	return nil
}

func initErrorTracker() errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}
	return tracker
}

// loadInputs assembles the engine and its inputs from the configuration
func loadInputs() (*riskservice.Engine, journal.Journal, risk.Settings, error) {
	table, err := contracts.Load(cfg.Data.ContractsPath)
	if err != nil {
		return nil, nil, risk.Settings{}, err
	}

	j, err := journalfile.Load(cfg.Data.JournalPath)
	if err != nil {
		return nil, nil, risk.Settings{}, err
	}

	settings := risk.Settings{
		InitialCapital:   decimal.NewFromFloat(cfg.Risk.InitialCapital),
		RiskPerTradePct:  cfg.Risk.RiskPerTradePct,
		DailyLossMaxPct:  cfg.Risk.DailyLossMaxPct,
		WeeklyTargetPct:  cfg.Risk.WeeklyTargetPct,
		MonthlyTargetPct: cfg.Risk.MonthlyTargetPct,
		SecureMode:       cfg.Risk.SecureMode,
		StopLossTicks:    cfg.Risk.DefaultStopTicks,
	}
	if cfg.Risk.BalanceOverride > 0 {
		override := decimal.NewFromFloat(cfg.Risk.BalanceOverride)
		settings.BalanceOverride = &override
	}

	return riskservice.NewEngine(table, log), j, settings, nil
}
