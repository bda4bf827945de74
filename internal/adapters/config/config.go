package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"smartrisk/pkg/errors"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Risk          RiskConfig
	Data          DataConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"smartrisk"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// ServerConfig configures the serve command. The refresh interval is how
// often the journal file is re-read and the pipeline recomputed.
type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	RefreshInterval time.Duration `envconfig:"SERVER_REFRESH_INTERVAL" default:"1m"`
}

// RiskConfig carries the trader's risk settings. Defaults match the
// documented engine defaults so an empty environment is fully usable.
type RiskConfig struct {
	InitialCapital   float64 `envconfig:"RISK_INITIAL_CAPITAL" default:"10000"`
	BalanceOverride  float64 `envconfig:"RISK_BALANCE_OVERRIDE" default:"0"` // 0 = no override
	RiskPerTradePct  float64 `envconfig:"RISK_PER_TRADE_PCT" default:"1"`
	DailyLossMaxPct  float64 `envconfig:"RISK_DAILY_LOSS_MAX_PCT" default:"3"`
	WeeklyTargetPct  float64 `envconfig:"RISK_WEEKLY_TARGET_PCT" default:"2"`
	MonthlyTargetPct float64 `envconfig:"RISK_MONTHLY_TARGET_PCT" default:"8"`
	SecureMode       bool    `envconfig:"RISK_SECURE_MODE" default:"false"`
	DefaultStopTicks int     `envconfig:"RISK_DEFAULT_STOP_TICKS" default:"20"`
}

type DataConfig struct {
	JournalPath   string `envconfig:"DATA_JOURNAL_PATH" default:"journal.csv"`
	ContractsPath string `envconfig:"DATA_CONTRACTS_PATH"` // empty = built-in table
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
