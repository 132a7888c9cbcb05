package models

import "strings"

type Category string

const (
	CategoryUnknown              Category = "unknown"
	CategoryRugPull              Category = "rug-pull"
	CategoryFlashLoanAttack      Category = "flash-loan-attack"
	CategoryFrontRunning         Category = "front-running"
	CategorySmartContractExploit Category = "smart-contract-exploit"
	CategoryPhishing             Category = "phishing"
	CategoryPriceManipulation    Category = "price-manipulation"
	CategoryHoneypot             Category = "honeypot"
	CategoryGovernanceAttack     Category = "governance-attack"
	CategoryMEVAbuse             Category = "mev-abuse"
	CategorySuspiciousOther      Category = "suspicious-other"
)

var knownCategories = map[Category]struct{}{
	CategoryUnknown:              {},
	CategoryRugPull:              {},
	CategoryFlashLoanAttack:      {},
	CategoryFrontRunning:         {},
	CategorySmartContractExploit: {},
	CategoryPhishing:             {},
	CategoryPriceManipulation:    {},
	CategoryHoneypot:             {},
	CategoryGovernanceAttack:     {},
	CategoryMEVAbuse:             {},
	CategorySuspiciousOther:      {},
}

// ParseCategory maps a classifier label onto a known category. Underscores and case are
// normalized; anything unrecognised becomes CategoryUnknown.
func ParseCategory(s string) Category {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, ok := knownCategories[c]; ok {
		return c
	}
	return CategoryUnknown
}

// Severity is ordered: SeverityInfo < SeverityMedium < SeverityHigh < SeverityCritical.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "info"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}

func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityInfo
	}
}

// SeverityForScore is the step function from a 0-100 score to a severity tier.
func SeverityForScore(score float64) Severity {
	switch {
	case score > 90:
		return SeverityCritical
	case score > 75:
		return SeverityHigh
	case score > 50:
		return SeverityMedium
	default:
		return SeverityInfo
	}
}

type VerdictSource string

const (
	SourceClassifier VerdictSource = "classifier"
	SourceHeuristic  VerdictSource = "heuristic"
)

// RiskVerdict is the classification of a single transaction.
type RiskVerdict struct {
	DangerScore  float64
	Malicious    bool
	Category     Category
	Confidence   float64
	Signature    string
	ModelVersion string
	Source       VerdictSource
}

func (v RiskVerdict) Severity() Severity {
	return SeverityForScore(v.DangerScore)
}

// CorrelationFlags are observations derived locally from a transaction.
type CorrelationFlags struct {
	HighGas          bool
	HighValue        bool
	ContractCreation bool
	Burst            bool
	SenderTxCount    int
}

func (f CorrelationFlags) Names() []string {
	names := make([]string, 0, 4)
	if f.HighGas {
		names = append(names, "high-gas")
	}
	if f.HighValue {
		names = append(names, "high-value")
	}
	if f.ContractCreation {
		names = append(names, "contract-creation")
	}
	if f.Burst {
		names = append(names, "burst")
	}
	return names
}

// Correlation is a verdict enriched with local flags.
type Correlation struct {
	Flags          CorrelationFlags
	CompositeScore float64
	Severity       Severity
}
