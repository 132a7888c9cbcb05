package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	errEnvVarNotFound = errors.New("environment variable not found")
	errInvalidValue   = errors.New("invalid environment variable value")
)

const (
	ethNodeEnvKey            = "ETH_NODE_URL"
	ledgerAddressEnvKey      = "LEDGER_CONTRACT_ADDRESS"
	reporterKeyEnvKey        = "REPORTER_PRIVATE_KEY"
	classifierURLEnvKey      = "CLASSIFIER_URL"
	classifierTimeoutEnvKey  = "CLASSIFIER_TIMEOUT"
	modelVersionEnvKey       = "MODEL_VERSION"
	normalGasPriceEnvKey     = "NORMAL_GAS_PRICE_GWEI"
	highGasMultipleEnvKey    = "HIGH_GAS_MULTIPLE"
	highValueEnvKey          = "HIGH_VALUE_ETH"
	alertThresholdEnvKey     = "ALERT_THRESHOLD"
	alertCooldownEnvKey      = "ALERT_COOLDOWN"
	burstWindowEnvKey        = "BURST_WINDOW"
	burstCountEnvKey         = "BURST_COUNT"
	pollIntervalEnvKey       = "POLL_INTERVAL"
	maxBlockRangeEnvKey      = "MAX_BLOCK_RANGE"
	concurrencyEnvKey        = "ANALYSIS_CONCURRENCY"
	dedupCapacityEnvKey      = "DEDUP_CAPACITY"
	checkpointPathEnvKey     = "CHECKPOINT_PATH"
	checkpointIntervalEnvKey = "CHECKPOINT_INTERVAL"
	statsIntervalEnvKey      = "STATS_INTERVAL"
	startBlockEnvKey         = "START_BLOCK"
	gasMarginEnvKey          = "GAS_MARGIN_PERCENT"
	confirmTimeoutEnvKey     = "CONFIRM_TIMEOUT"
	confirmBlocksEnvKey      = "CONFIRM_BLOCKS"
	alertStallEnvKey         = "ALERT_STALL_ATTEMPTS"
	alertRetryBaseEnvKey     = "ALERT_RETRY_BASE_DELAY"
	alertRetryMaxEnvKey      = "ALERT_RETRY_MAX_DELAY"
	rpcAttemptsEnvKey        = "RPC_RETRY_ATTEMPTS"
	rpcRetryBaseEnvKey       = "RPC_RETRY_BASE_DELAY"
	rpcRetryMaxEnvKey        = "RPC_RETRY_MAX_DELAY"
	resubscribeEnvKey        = "RESUBSCRIBE_DELAY"
	shutdownGraceEnvKey      = "SHUTDOWN_GRACE"
	dbConnEnvKey             = "DB_CONNECTION_URL"
	kafkaBrokersEnvKey       = "KAFKA_BROKERS"
	kafkaTopicEnvKey         = "KAFKA_ALERT_TOPIC"
	apiPortEnvKey            = "API_PORT"
	jwtSecretEnvKey          = "JWT_SECRET"
)

type Monitor struct {
	NodeURL       string
	LedgerAddress common.Address
	ReporterKey   *ecdsa.PrivateKey

	ClassifierURL     string
	ClassifierTimeout time.Duration
	ModelVersion      string

	// NormalGasPrice and HighValue are in wei.
	NormalGasPrice  *big.Int
	HighGasMultiple float64
	HighValue       *big.Int

	AlertThreshold float64
	AlertCooldown  time.Duration
	BurstWindow    time.Duration
	BurstCount     int

	PollInterval        time.Duration
	ResubscribeDelay    time.Duration
	MaxBlockRange       uint64
	AnalysisConcurrency int
	DedupCapacity       int
	// StartBlock is nil when monitoring should start at the chain head.
	StartBlock *uint64

	CheckpointPath     string
	CheckpointInterval time.Duration
	StatsInterval      time.Duration

	GasMarginPercent uint64
	ConfirmTimeout   time.Duration
	ConfirmBlocks    uint64
	ShutdownGrace    time.Duration

	// RPC retries apply to node and ledger calls, alert retries to re-delivery of an
	// alert without a terminal outcome.
	RPCRetryAttempts    int
	RPCRetryBaseDelay   time.Duration
	RPCRetryMaxDelay    time.Duration
	AlertRetryBaseDelay time.Duration
	AlertRetryMaxDelay  time.Duration
	AlertStallAttempts  int

	DBConnectionURL string
	KafkaBrokers    []string
	KafkaAlertTopic string
	APIPort         string
	JWTSecret       string
}

func (m Monitor) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.NodeURL, validation.Required),
		validation.Field(&m.ClassifierTimeout, validation.Required),
		validation.Field(&m.ModelVersion, validation.Required),
		validation.Field(&m.HighGasMultiple, validation.Required, validation.Min(1.0)),
		validation.Field(&m.AlertThreshold, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&m.BurstCount, validation.Required, validation.Min(1)),
		validation.Field(&m.PollInterval, validation.Required),
		validation.Field(&m.MaxBlockRange, validation.Required, validation.Min(uint64(1))),
		validation.Field(&m.AnalysisConcurrency, validation.Required, validation.Min(1)),
		validation.Field(&m.DedupCapacity, validation.Required, validation.Min(1)),
		validation.Field(&m.CheckpointPath, validation.Required),
		validation.Field(&m.CheckpointInterval, validation.Required),
		validation.Field(&m.ConfirmTimeout, validation.Required),
		validation.Field(&m.ResubscribeDelay, validation.Required),
		validation.Field(&m.RPCRetryAttempts, validation.Required, validation.Min(1)),
		validation.Field(&m.RPCRetryBaseDelay, validation.Required),
		validation.Field(&m.RPCRetryMaxDelay, validation.Required, validation.Min(m.RPCRetryBaseDelay)),
		validation.Field(&m.AlertRetryBaseDelay, validation.Required),
		validation.Field(&m.AlertRetryMaxDelay, validation.Required, validation.Min(m.AlertRetryBaseDelay)),
		validation.Field(&m.AlertStallAttempts, validation.Required, validation.Min(1)),
		validation.Field(&m.KafkaAlertTopic, validation.When(len(m.KafkaBrokers) > 0, validation.Required)),
		validation.Field(&m.APIPort, validation.Required),
	)
}

func NewMonitor() (Monitor, error) {
	return FromLookup(os.LookupEnv)
}

// NewTokenSecret reads only the status API signing secret, for issuing operator tokens.
func NewTokenSecret() (string, error) {
	env := reader{lookup: os.LookupEnv}
	secret := env.required(jwtSecretEnvKey)
	if env.err != nil {
		return "", env.err
	}
	return secret, nil
}

// FromLookup builds the configuration from lookup, which has the signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Monitor, error) {
	env := reader{lookup: lookup}

	m := Monitor{
		NodeURL:             env.required(ethNodeEnvKey),
		LedgerAddress:       env.address(ledgerAddressEnvKey),
		ReporterKey:         env.privateKey(reporterKeyEnvKey),
		ClassifierURL:       env.str(classifierURLEnvKey, ""),
		ClassifierTimeout:   env.duration(classifierTimeoutEnvKey, 8*time.Second),
		ModelVersion:        env.str(modelVersionEnvKey, "threatwatch-heuristic-v1"),
		NormalGasPrice:      env.units(normalGasPriceEnvKey, "50", 9),
		HighGasMultiple:     env.float(highGasMultipleEnvKey, 2),
		HighValue:           env.units(highValueEnvKey, "10", 18),
		AlertThreshold:      env.float(alertThresholdEnvKey, 70),
		AlertCooldown:       env.duration(alertCooldownEnvKey, 30*time.Second),
		BurstWindow:         env.duration(burstWindowEnvKey, 60*time.Second),
		BurstCount:          env.integer(burstCountEnvKey, 5),
		PollInterval:        env.duration(pollIntervalEnvKey, 4*time.Second),
		ResubscribeDelay:    env.duration(resubscribeEnvKey, 15*time.Second),
		MaxBlockRange:       env.uinteger(maxBlockRangeEnvKey, 20),
		AnalysisConcurrency: env.integer(concurrencyEnvKey, 8),
		DedupCapacity:       env.integer(dedupCapacityEnvKey, 50_000),
		StartBlock:          env.optionalUint(startBlockEnvKey),
		CheckpointPath:      env.str(checkpointPathEnvKey, "./data/monitor.ckpt"),
		CheckpointInterval:  env.duration(checkpointIntervalEnvKey, 30*time.Second),
		StatsInterval:       env.duration(statsIntervalEnvKey, 60*time.Second),
		GasMarginPercent:    env.uinteger(gasMarginEnvKey, 20),
		ConfirmTimeout:      env.duration(confirmTimeoutEnvKey, 2*time.Minute),
		ConfirmBlocks:       env.uinteger(confirmBlocksEnvKey, 12),
		ShutdownGrace:       env.duration(shutdownGraceEnvKey, 20*time.Second),
		RPCRetryAttempts:    env.integer(rpcAttemptsEnvKey, 4),
		RPCRetryBaseDelay:   env.duration(rpcRetryBaseEnvKey, 200*time.Millisecond),
		RPCRetryMaxDelay:    env.duration(rpcRetryMaxEnvKey, 5*time.Second),
		AlertRetryBaseDelay: env.duration(alertRetryBaseEnvKey, 4*time.Second),
		AlertRetryMaxDelay:  env.duration(alertRetryMaxEnvKey, 2*time.Minute),
		AlertStallAttempts:  env.integer(alertStallEnvKey, 5),
		DBConnectionURL:     env.str(dbConnEnvKey, ""),
		KafkaBrokers:        env.list(kafkaBrokersEnvKey),
		KafkaAlertTopic:     env.str(kafkaTopicEnvKey, "threat-alerts"),
		APIPort:             env.str(apiPortEnvKey, ":9090"),
		JWTSecret:           env.str(jwtSecretEnvKey, ""),
	}
	if env.err != nil {
		return Monitor{}, env.err
	}

	if err := m.Validate(); err != nil {
		return Monitor{}, fmt.Errorf("validate config: %w", err)
	}
	return m, nil
}

// reader keeps the first error so every key can be read in one pass.
type reader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
}

func (r *reader) value(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *reader) required(key string) string {
	v, ok := r.value(key)
	if !ok && r.err == nil {
		r.err = fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return v
}

func (r *reader) str(key, def string) string {
	if v, ok := r.value(key); ok {
		return v
	}
	return def
}

func (r *reader) address(key string) common.Address {
	v := r.required(key)
	if v == "" {
		return common.Address{}
	}
	if !common.IsHexAddress(v) {
		r.fail(key, errors.New("not a hex address"))
		return common.Address{}
	}
	return common.HexToAddress(v)
}

func (r *reader) privateKey(key string) *ecdsa.PrivateKey {
	v := r.required(key)
	if v == "" {
		return nil
	}
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(v, "0x"))
	if err != nil {
		r.fail(key, errors.New("not a hex encoded secp256k1 key"))
		return nil
	}
	return pk
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return d
}

func (r *reader) integer(key string, def int) int {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *reader) uinteger(key string, def uint64) uint64 {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *reader) optionalUint(key string) *uint64 {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &n
}

func (r *reader) float(key string, def float64) float64 {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return f
}

// units parses a decimal amount and scales it by 10^exp into base units.
func (r *reader) units(key, def string, exp int32) *big.Int {
	v, ok := r.value(key)
	if !ok {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		r.fail(key, err)
		return new(big.Int)
	}
	if d.IsNegative() {
		r.fail(key, errors.New("must not be negative"))
		return new(big.Int)
	}
	return d.Shift(exp).BigInt()
}

func (r *reader) list(key string) []string {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
