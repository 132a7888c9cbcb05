package payload

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

const (
	DefaultAlertsLimit = 50
	MaxAlertsLimit     = 500
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// AlertsRequest lists the most recent alerts, optionally filtered by a minimum severity.
type AlertsRequest struct {
	Limit       int
	MinSeverity string
}

func (a *AlertsRequest) FromQuery(values url.Values) error {
	a.Limit = DefaultAlertsLimit
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("limit %q: %w", raw, err)
		}
		a.Limit = limit
	}
	a.MinSeverity = values.Get("minSeverity")
	return nil
}

func (a AlertsRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Limit, validation.Required, validation.Min(1), validation.Max(MaxAlertsLimit)),
		validation.Field(&a.MinSeverity, validation.In("info", "medium", "high", "critical")),
	)
}

func (a AlertsRequest) Severity() models.Severity {
	return models.ParseSeverity(a.MinSeverity)
}

type AlertRequest struct {
	TxHash string
}

func (a AlertRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (a AlertRequest) Hash() common.Hash {
	return common.HexToHash(a.TxHash)
}
