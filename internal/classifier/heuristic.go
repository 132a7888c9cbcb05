package classifier

import (
	"math/big"

	"threatwatch/internal/models"
)

const HeuristicModelVersion = "local-heuristic-v1"

// Heuristic is the deterministic fallback used while the scoring service is unreachable.
// A transaction is malicious iff its gas price or its value exceeds the configured limits.
type Heuristic struct {
	HighGasPrice *big.Int
	HighValue    *big.Int
}

// NewHeuristic derives the high gas limit as normalGasPrice * gasMultiple.
func NewHeuristic(normalGasPrice *big.Int, gasMultiple float64, highValue *big.Int) Heuristic {
	limit := new(big.Float).Mul(new(big.Float).SetInt(normalGasPrice), big.NewFloat(gasMultiple))
	highGas, _ := limit.Int(nil)
	return Heuristic{
		HighGasPrice: highGas,
		HighValue:    highValue,
	}
}

func (h Heuristic) Evaluate(tx models.Transaction) models.RiskVerdict {
	highGas := above(tx.GasPrice, h.HighGasPrice)
	highValue := above(tx.Value, h.HighValue)

	verdict := models.RiskVerdict{
		DangerScore:  10,
		Category:     models.CategoryUnknown,
		Confidence:   20,
		Signature:    "no heuristic threshold crossed",
		ModelVersion: HeuristicModelVersion,
		Source:       models.SourceHeuristic,
	}

	switch {
	case highGas && highValue:
		verdict.DangerScore = 95
		verdict.Malicious = true
		verdict.Category = models.CategoryFrontRunning
		verdict.Confidence = 70
		verdict.Signature = "gas price and value above limits"
	case highGas:
		verdict.DangerScore = 80
		verdict.Malicious = true
		verdict.Category = models.CategoryFrontRunning
		verdict.Confidence = 50
		verdict.Signature = "gas price above limit"
	case highValue:
		verdict.DangerScore = 80
		verdict.Malicious = true
		verdict.Category = models.CategorySuspiciousOther
		verdict.Confidence = 50
		verdict.Signature = "value above limit"
	}
	return verdict
}

func above(v, limit *big.Int) bool {
	if v == nil || limit == nil || limit.Sign() <= 0 {
		return false
	}
	return v.Cmp(limit) > 0
}
