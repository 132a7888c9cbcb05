package handler

import (
	"context"
	"net/http"

	"threatwatch/internal/http/payload"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name StatusService . StatusService
type StatusService interface {
	Status() models.Status
}

//counterfeiter:generate -o fake -fake-name AlertHistory . AlertHistory
type AlertHistory interface {
	RecentAlerts(ctx context.Context, limit int) ([]models.AlertEntry, error)
	AlertByTxHash(ctx context.Context, hash common.Hash) (models.AlertEntry, error)
}

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateQuery(r *http.Request, object payload.QueryRequest) error
	ValidatePayload(object any) error
}
