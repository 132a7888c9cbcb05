package correlation

import (
	"math/big"

	"threatwatch/internal/models"
)

// Weights are the additive score contributions of each correlation flag.
type Weights struct {
	HighGas          float64
	HighValue        float64
	ContractCreation float64
	GasAndValue      float64
	Burst            float64
}

func DefaultWeights() Weights {
	return Weights{
		HighGas:          15,
		HighValue:        10,
		ContractCreation: 10,
		GasAndValue:      20,
		Burst:            10,
	}
}

type Thresholds struct {
	HighGasPrice *big.Int
	HighValue    *big.Int
}

// Engine combines a classifier verdict with locally observed patterns into a composite score.
type Engine struct {
	weights    Weights
	thresholds Thresholds
	bursts     *BurstTracker
}

func NewEngine(weights Weights, thresholds Thresholds, bursts *BurstTracker) *Engine {
	return &Engine{
		weights:    weights,
		thresholds: thresholds,
		bursts:     bursts,
	}
}

// Enrich records the sender's activity and scores the transaction.
func (e *Engine) Enrich(tx models.Transaction, verdict models.RiskVerdict) models.Correlation {
	count := 1
	if e.bursts != nil {
		count = e.bursts.Observe(tx.From, tx.Hash)
	}
	return Score(verdict, e.Flags(tx, count), e.weights)
}

func (e *Engine) Prune() {
	if e.bursts != nil {
		e.bursts.Prune()
	}
}

// Flags derives the correlation flags of tx given how many transactions its sender
// produced inside the burst window.
func (e *Engine) Flags(tx models.Transaction, senderTxCount int) models.CorrelationFlags {
	flags := models.CorrelationFlags{
		HighGas:          exceeds(tx.GasPrice, e.thresholds.HighGasPrice),
		HighValue:        exceeds(tx.Value, e.thresholds.HighValue),
		ContractCreation: tx.IsContractCreation(),
		SenderTxCount:    senderTxCount,
	}
	if e.bursts != nil {
		flags.Burst = senderTxCount >= e.bursts.limit
	}
	return flags
}

// Score is a pure function: verdict danger plus weighted flags, clamped to [0, 100].
func Score(verdict models.RiskVerdict, flags models.CorrelationFlags, w Weights) models.Correlation {
	score := verdict.DangerScore
	if flags.HighGas {
		score += w.HighGas
	}
	if flags.HighValue {
		score += w.HighValue
	}
	if flags.HighGas && flags.HighValue {
		score += w.GasAndValue
	}
	if flags.ContractCreation {
		score += w.ContractCreation
	}
	if flags.Burst {
		score += w.Burst
	}
	score = clamp(score, 0, 100)

	return models.Correlation{
		Flags:          flags,
		CompositeScore: score,
		Severity:       models.SeverityForScore(score),
	}
}

func exceeds(v, limit *big.Int) bool {
	if v == nil || limit == nil || limit.Sign() <= 0 {
		return false
	}
	return v.Cmp(limit) > 0
}

func clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
