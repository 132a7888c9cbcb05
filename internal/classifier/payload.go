package classifier

import (
	"fmt"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

type scoreRequest struct {
	Hash        string  `json:"hash"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Value       string  `json:"value"`
	GasPrice    string  `json:"gasPrice"`
	GasLimit    uint64  `json:"gasLimit"`
	Data        string  `json:"data"`
	Nonce       uint64  `json:"nonce"`
	BlockNumber uint64  `json:"blockNumber"`
}

func newScoreRequest(tx models.Transaction) scoreRequest {
	req := scoreRequest{
		Hash:        tx.Hash.Hex(),
		From:        tx.From.Hex(),
		Value:       "0",
		GasPrice:    "0",
		GasLimit:    tx.GasLimit,
		Data:        hexutil.Encode(tx.Data),
		Nonce:       tx.Nonce,
		BlockNumber: tx.BlockNumber,
	}
	if tx.To != nil {
		to := tx.To.Hex()
		req.To = &to
	}
	if tx.Value != nil {
		req.Value = tx.Value.String()
	}
	if tx.GasPrice != nil {
		req.GasPrice = tx.GasPrice.String()
	}
	return req
}

type scoreResponse struct {
	DangerScore     *float64 `json:"danger_score"`
	IsMalicious     *bool    `json:"is_malicious"`
	ThreatCategory  string   `json:"threat_category"`
	ThreatSignature string   `json:"threat_signature"`
	Confidence      *float64 `json:"confidence"`
}

func (r scoreResponse) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DangerScore, validation.NotNil, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&r.IsMalicious, validation.NotNil),
		validation.Field(&r.Confidence, validation.Min(0.0), validation.Max(100.0)),
	)
}

func (r scoreResponse) toVerdict(modelVersion string) (models.RiskVerdict, error) {
	if err := r.Validate(); err != nil {
		return models.RiskVerdict{}, fmt.Errorf("validate score response: %w", err)
	}

	verdict := models.RiskVerdict{
		DangerScore:  *r.DangerScore,
		Malicious:    *r.IsMalicious,
		Category:     models.ParseCategory(r.ThreatCategory),
		Signature:    r.ThreatSignature,
		ModelVersion: modelVersion,
		Source:       models.SourceClassifier,
	}
	if r.Confidence != nil {
		verdict.Confidence = *r.Confidence
	}
	return verdict, nil
}
