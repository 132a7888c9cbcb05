package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"threatwatch/internal/models"

	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("classifier url not configured")
var ErrUnexpectedStatus = errors.New("unexpected classifier status")

const (
	scorePath  = "/analyze"
	healthPath = "/health"
)

type Config struct {
	URL          string
	Timeout      time.Duration
	ModelVersion string
}

// Client scores transactions with the external classifier and falls back to the local
// heuristic whenever the classifier cannot produce a valid verdict in time.
type Client struct {
	logs       *zap.SugaredLogger
	cfg        Config
	httpClient *http.Client
	fallback   Heuristic
}

func NewClient(logger *zap.SugaredLogger, cfg Config, fallback Heuristic) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")

	return &Client{
		logs: logger,
		cfg:  cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		fallback: fallback,
	}
}

// Classify never fails: classifier errors are logged and answered by the heuristic.
func (c *Client) Classify(ctx context.Context, tx models.Transaction) models.RiskVerdict {
	verdict, err := c.score(ctx, tx)
	if err == nil {
		return verdict
	}

	c.logs.Warnw("classifier unavailable, using heuristic",
		"error", err,
		"tx_hash", tx.Hash.Hex())

	return c.fallback.Evaluate(tx)
}

// Probe checks that the classifier answers its health endpoint.
func (c *Client) Probe(ctx context.Context) error {
	if c.cfg.URL == "" {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (c *Client) score(ctx context.Context, tx models.Transaction) (models.RiskVerdict, error) {
	if c.cfg.URL == "" {
		return models.RiskVerdict{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(newScoreRequest(tx))
	if err != nil {
		return models.RiskVerdict{}, fmt.Errorf("encode score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+scorePath, bytes.NewReader(body))
	if err != nil {
		return models.RiskVerdict{}, fmt.Errorf("build score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RiskVerdict{}, fmt.Errorf("score request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.RiskVerdict{}, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.RiskVerdict{}, fmt.Errorf("decode score response: %w", err)
	}

	return payload.toVerdict(c.cfg.ModelVersion)
}
