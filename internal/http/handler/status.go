package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"threatwatch/internal/http/handler/middleware"
	"threatwatch/internal/http/payload"
	"threatwatch/internal/models"
	"threatwatch/pkg/jwt"

	"go.uber.org/zap"
)

var (
	GetHealth = "GET /threatwatch/health"
	GetStats  = "GET /threatwatch/stats"
	GetAlerts = "GET /threatwatch/alerts"
	GetAlert  = "GET /threatwatch/alerts/{txHash}"
)

var TimeNow = time.Now

type StatusHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	monitor          StatusService
	history          AlertHistory
	tokens           TokenValidator
}

func NewStatusHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, monitor StatusService, history AlertHistory, tokens TokenValidator) *StatusHandler {
	return &StatusHandler{
		logs:             logger,
		requestValidator: requestValidator,
		monitor:          monitor,
		history:          history,
		tokens:           tokens,
	}
}

// Register adds the status routes to mux.
func (h *StatusHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetHealth, h.HandleHealth)
	mux.HandleFunc(GetStats, h.HandleGetStats)
	mux.HandleFunc(GetAlerts, h.HandleGetAlerts)
	mux.HandleFunc(GetAlert, h.HandleGetAlert)
}

func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, requestID(r))
}

func (h *StatusHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetStats, requestId) {
		return
	}

	view := newStatusView(h.monitor.Status(), TimeNow())
	h.respond(w, Response{Data: view}, http.StatusOK, requestId)
}

func (h *StatusHandler) HandleGetAlerts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetAlerts, requestId) {
		return
	}

	var req payload.AlertsRequest
	if err := h.requestValidator.DecodeAndValidateQuery(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetAlerts,
			"request_id", requestId)
		return
	}

	entries, err := h.history.RecentAlerts(r.Context(), req.Limit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve alerts",
			Error:   fmt.Errorf("get recent alerts: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get recent alerts",
			"error", err,
			"handler", GetAlerts,
			"request_id", requestId)
		return
	}

	minSeverity := req.Severity()
	alerts := make([]AlertView, 0, len(entries))
	for _, e := range entries {
		if e.Alert.Severity < minSeverity {
			continue
		}
		alerts = append(alerts, newAlertView(e))
	}

	h.respond(w, Response{
		Data: map[string][]AlertView{
			"alerts": alerts,
		},
	}, http.StatusOK, requestId)
}

func (h *StatusHandler) HandleGetAlert(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetAlert, requestId) {
		return
	}

	req := payload.AlertRequest{TxHash: r.PathValue("txHash")}
	if err := h.requestValidator.ValidatePayload(req); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate transaction hash: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate transaction hash",
			"error", err,
			"handler", GetAlert,
			"request_id", requestId)
		return
	}

	entry, err := h.history.AlertByTxHash(r.Context(), req.Hash())
	if err != nil {
		code := http.StatusInternalServerError
		msg := "unexpected error occurred"
		if errors.Is(err, models.ErrAlertNotFound) {
			code = http.StatusNotFound
			msg = err.Error()
		}
		h.respond(w, Response{
			Message: "Could not retrieve alert",
			Error:   msg,
		}, code, requestId)
		h.logs.Errorw("failed to get alert",
			"error", err,
			"tx_hash", req.TxHash,
			"handler", GetAlert,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: newAlertView(entry)}, http.StatusOK, requestId)
}

// authorize expects an "Authorization: Bearer <token>" header carrying the status read scope.
func (h *StatusHandler) authorize(w http.ResponseWriter, r *http.Request, route, requestId string) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "bearer token is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing bearer token", "handler", route, "request_id", requestId)
		return false
	}

	claims, err := h.tokens.Validate(strings.TrimSpace(token))
	if err != nil {
		resp := Response{
			Message: "Authentication failed",
			Error:   jwt.ErrTokenNotValid.Error(),
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			resp.Error = jwt.ErrTokenExpired.Error()
		}
		h.respond(w, resp, http.StatusUnauthorized, requestId)
		h.logs.Errorw("token validation failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return false
	}

	if !jwt.HasScope(claims, jwt.ScopeStatusRead) {
		h.respond(w, Response{
			Message: "Authorization failed",
			Error:   "token lacks the required scope",
		}, http.StatusForbidden,
			requestId)
		h.logs.Errorw("token scope rejected",
			"subject", claims["sub"],
			"handler", route,
			"request_id", requestId)
		return false
	}
	return true
}

func (h *StatusHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
