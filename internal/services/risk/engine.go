package riskservice

import (
	"smartrisk/internal/domain/risk"
	"smartrisk/pkg/logger"
)

// Engine is the per-trade risk-governance calculator. It is a pure
// function of its inputs: a journal snapshot, a settings snapshot, and a
// reference time. There is no hidden state, no I/O, and no concurrency;
// callers re-run the full pipeline whenever any input changes.
type Engine struct {
	contracts []risk.ContractSpec
	log       *logger.Logger
}

// NewEngine creates an engine over a static contract table
func NewEngine(contracts []risk.ContractSpec, log *logger.Logger) *Engine {
	return &Engine{
		contracts: contracts,
		log:       log,
	}
}

// Contracts returns the static instrument table the engine sizes against
func (e *Engine) Contracts() []risk.ContractSpec {
	return e.contracts
}
