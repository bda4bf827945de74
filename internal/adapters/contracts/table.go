// Package contracts supplies the static instrument table, either from a
// YAML file or from the built-in defaults.
package contracts

import (
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"smartrisk/internal/domain/risk"
	"smartrisk/pkg/errors"
)

// fileSpec is the YAML wire form of one instrument
type fileSpec struct {
	Symbol     string  `yaml:"symbol"`
	Name       string  `yaml:"name"`
	Margin     float64 `yaml:"margin_per_contract"`
	TickValue  float64 `yaml:"tick_value"`
	TickSize   float64 `yaml:"tick_size"`
	Multiplier float64 `yaml:"multiplier"`
	Category   string  `yaml:"category"`
}

type fileTable struct {
	Contracts []fileSpec `yaml:"contracts"`
}

// Default returns the built-in four-instrument table: the micro and
// standard contracts of the two major index families, with day-trading
// margins typical of retail futures brokers.
func Default() []risk.ContractSpec {
	return []risk.ContractSpec{
		{
			Symbol:            "MNQ",
			Name:              "Micro E-mini Nasdaq-100",
			MarginPerContract: decimal.NewFromInt(50),
			TickValue:         decimal.NewFromFloat(0.50),
			TickSize:          0.25,
			Multiplier:        2,
			Category:          "micro",
		},
		{
			Symbol:            "MES",
			Name:              "Micro E-mini S&P 500",
			MarginPerContract: decimal.NewFromInt(50),
			TickValue:         decimal.NewFromFloat(1.25),
			TickSize:          0.25,
			Multiplier:        5,
			Category:          "micro",
		},
		{
			Symbol:            "NQ",
			Name:              "E-mini Nasdaq-100",
			MarginPerContract: decimal.NewFromInt(1000),
			TickValue:         decimal.NewFromFloat(5.00),
			TickSize:          0.25,
			Multiplier:        20,
			Category:          "standard",
		},
		{
			Symbol:            "ES",
			Name:              "E-mini S&P 500",
			MarginPerContract: decimal.NewFromInt(500),
			TickValue:         decimal.NewFromFloat(12.50),
			TickSize:          0.25,
			Multiplier:        50,
			Category:          "standard",
		},
	}
}

// Load reads a contract table from a YAML file. An empty path returns the
// built-in defaults.
func Load(path string) ([]risk.ContractSpec, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read contract table %s", path)
	}

	var table fileTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, errors.Wrap(errors.ErrContractTable, err.Error())
	}
	if len(table.Contracts) == 0 {
		return nil, errors.Wrap(errors.ErrContractTable, "no contracts defined")
	}

	specs := make([]risk.ContractSpec, 0, len(table.Contracts))
	for _, fs := range table.Contracts {
		if fs.Symbol == "" {
			return nil, errors.Wrap(errors.ErrContractTable, "contract without symbol")
		}
		specs = append(specs, risk.ContractSpec{
			Symbol:            fs.Symbol,
			Name:              fs.Name,
			MarginPerContract: decimal.NewFromFloat(fs.Margin),
			TickValue:         decimal.NewFromFloat(fs.TickValue),
			TickSize:          fs.TickSize,
			Multiplier:        fs.Multiplier,
			Category:          fs.Category,
		})
	}

	return specs, nil
}
