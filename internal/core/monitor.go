package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"threatwatch/internal/correlation"
	"threatwatch/internal/dedup"
	"threatwatch/internal/gate"
	"threatwatch/internal/metrics"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var TimeNow = time.Now

// Monitor polls the chain for new transactions, scores them and escalates qualifying ones to
// the ledger. Block ranges are processed one at a time; transactions inside a range are
// analyzed concurrently.
type Monitor struct {
	logs        *zap.SugaredLogger
	cfg         Config
	chain       ChainSource
	classifier  Classifier
	engine      *correlation.Engine
	gate        *gate.Gate
	seen        *dedup.Set
	reporter    Reporter
	checkpoints CheckpointStore
	recorder    AlertRecorder
	sink        EventSink
	metrics     metrics.MonitorMetrics
	history     *History

	analyzed      atomic.Uint64
	threats       atomic.Uint64
	alertsSent    atomic.Uint64
	errs          atomic.Uint64
	lastConfirmed atomic.Uint64
	subscribed    atomic.Bool

	// polling guards next and keeps block ranges sequential.
	polling sync.Mutex
	next    uint64

	mu        sync.Mutex
	startedAt time.Time
	inFlight  map[common.Hash]*inFlightAlert
	related   map[common.Address][]common.Hash
	actors    map[common.Address]*actorLock
}

// NewMonitor is a constructor function for the Monitor type.
func NewMonitor(
	logger *zap.SugaredLogger,
	cfg Config,
	chain ChainSource,
	classifier Classifier,
	engine *correlation.Engine,
	alertGate *gate.Gate,
	seen *dedup.Set,
	reporter Reporter,
	checkpoints CheckpointStore,
	opts ...Option,
) *Monitor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.StallAttempts <= 0 {
		cfg.StallAttempts = 1
	}

	m := &Monitor{
		logs:        logger,
		cfg:         cfg,
		chain:       chain,
		classifier:  classifier,
		engine:      engine,
		gate:        alertGate,
		seen:        seen,
		reporter:    reporter,
		checkpoints: checkpoints,
		metrics:     metrics.NewMonitorMetrics(),
		inFlight:    make(map[common.Hash]*inFlightAlert),
		related:     make(map[common.Address][]common.Hash),
		actors:      make(map[common.Address]*actorLock),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.history == nil {
		m.history = NewHistory(cfg.HistorySize)
	}
	return m
}

// History returns the in-memory record of settled alerts.
func (m *Monitor) History() *History {
	return m.history
}

// Start connects to the chain, probes the classifier and restores the last checkpoint.
// A failing classifier only degrades the monitor; every other failure is fatal.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	m.startedAt = TimeNow()
	m.mu.Unlock()

	if err := m.chain.Connect(ctx); err != nil {
		return fmt.Errorf("connect chain source: %w", err)
	}

	if err := m.classifier.Probe(ctx); err != nil {
		m.logs.Warnw("classifier probe failed, local heuristic will answer until it recovers",
			"error", err)
	}

	cp, found, err := m.checkpoints.Load()
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}

	m.polling.Lock()
	defer m.polling.Unlock()
	if found {
		m.restore(cp)
		m.next = cp.LastConfirmedBlock + 1
		m.logs.Infow("resuming from checkpoint",
			"block", m.next,
			"pending_alerts", len(cp.PendingAlerts),
			"checkpoint_time", cp.Timestamp)
		return nil
	}

	start := uint64(0)
	if m.cfg.StartBlock != nil {
		start = *m.cfg.StartBlock
	} else {
		head, err := m.chain.LatestHeight(ctx)
		if err != nil {
			return fmt.Errorf("read chain head: %w", err)
		}
		start = head
	}
	m.next = start
	if start > 0 {
		m.advance(start - 1)
	}

	m.logs.Infow("starting without checkpoint", "block", start)
	return nil
}

// Run starts the monitor and drives it until ctx is cancelled. On cancellation, alert
// submissions already in progress get the shutdown grace period to settle, then a final
// checkpoint is written.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.Start(ctx); err != nil {
		return err
	}

	submitCtx, cancel := m.graceContext(ctx)
	defer cancel()

	poll := time.NewTicker(m.cfg.PollInterval)
	defer poll.Stop()
	checkpoint := time.NewTicker(m.cfg.CheckpointInterval)
	defer checkpoint.Stop()
	stats := time.NewTicker(m.cfg.StatsInterval)
	defer stats.Stop()

	var (
		feed        models.HeadFeed
		resubscribe <-chan time.Time
	)
	subscribe := func() {
		f, err := m.chain.SubscribeHeads(ctx)
		if err != nil {
			m.logs.Warnw("head subscription unavailable, polling only", "error", err)
			resubscribe = time.After(m.cfg.ResubscribeDelay)
			return
		}
		feed, resubscribe = f, nil
		m.setSubscribed(true)
	}
	subscribe()
	defer func() {
		if feed != nil {
			feed.Unsubscribe()
		}
	}()

	m.step(ctx, submitCtx)
	for {
		select {
		case <-ctx.Done():
			return m.shutdown()
		case <-poll.C:
			m.step(ctx, submitCtx)
		case <-headsOf(feed):
			m.step(ctx, submitCtx)
		case err := <-errsOf(feed):
			m.logs.Warnw("head subscription dropped, falling back to polling", "error", err)
			feed.Unsubscribe()
			feed = nil
			m.setSubscribed(false)
			resubscribe = time.After(m.cfg.ResubscribeDelay)
		case <-resubscribe:
			subscribe()
		case <-checkpoint.C:
			if err := m.Checkpoint(); err != nil {
				m.fail("checkpoint")
				m.logs.Errorw("failed to write checkpoint", "error", err)
			}
		case <-stats.C:
			m.logStats()
			m.gate.Prune()
			m.engine.Prune()
		}
	}
}

// CatchUp processes block ranges from the next unprocessed height until the chain head.
// A failing range is not advanced past and is delivered again on the next call. Calls are
// serialized with the polling of Run.
func (m *Monitor) CatchUp(ctx context.Context) error {
	return m.catchUp(ctx, ctx)
}

// Checkpoint persists the progress, counters and cooldowns.
func (m *Monitor) Checkpoint() error {
	m.mu.Lock()
	pending := pendingAlerts(m.inFlight)
	m.mu.Unlock()

	cp := models.Checkpoint{
		LastConfirmedBlock: m.lastConfirmed.Load(),
		Stats:              m.Stats(),
		Cooldowns:          m.gate.Snapshot(),
		PendingAlerts:      pending,
		Timestamp:          TimeNow().UTC(),
	}
	if err := m.checkpoints.Save(cp); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func (m *Monitor) Stats() models.Stats {
	return models.Stats{
		Analyzed:        m.analyzed.Load(),
		ThreatsDetected: m.threats.Load(),
		AlertsSent:      m.alertsSent.Load(),
		Errors:          m.errs.Load(),
	}
}

func (m *Monitor) LastConfirmedBlock() uint64 {
	return m.lastConfirmed.Load()
}

func (m *Monitor) Status() models.Status {
	m.mu.Lock()
	inFlight := len(m.inFlight)
	startedAt := m.startedAt
	m.mu.Unlock()

	return models.Status{
		Stats:              m.Stats(),
		LastConfirmedBlock: m.lastConfirmed.Load(),
		InFlightAlerts:     inFlight,
		HeadSubscribed:     m.subscribed.Load(),
		StartedAt:          startedAt,
	}
}

func (m *Monitor) step(ctx, submitCtx context.Context) {
	err := m.catchUp(ctx, submitCtx)
	switch {
	case err == nil || ctx.Err() != nil:
	case errors.Is(err, errBackingOff):
		m.logs.Debugw("block range held by alert re-delivery", "error", err)
	default:
		m.logs.Warnw("block range failed, retrying on next tick", "error", err)
	}
}

func (m *Monitor) catchUp(ctx, submitCtx context.Context) error {
	m.polling.Lock()
	defer m.polling.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rng, err := m.chain.Poll(ctx, m.next)
		if errors.Is(err, models.ErrNoNewBlocks) {
			return nil
		}
		if err != nil {
			m.fail("poll")
			return fmt.Errorf("poll from block %d: %w", m.next, err)
		}
		if rng.To < m.next {
			return nil
		}

		if err := m.processRange(ctx, submitCtx, rng); err != nil {
			return fmt.Errorf("process blocks %d-%d: %w", rng.From, rng.To, err)
		}

		m.advance(rng.To)
		m.next = rng.To + 1
	}
}

func (m *Monitor) processRange(ctx, submitCtx context.Context, rng models.BlockRange) error {
	var g errgroup.Group
	g.SetLimit(m.cfg.Concurrency)

	for _, entry := range m.stranded(rng) {
		g.Go(func() error {
			return m.deliver(submitCtx, entry)
		})
	}
	for _, tx := range rng.Transactions {
		g.Go(func() error {
			return m.handleTransaction(ctx, submitCtx, tx)
		})
	}
	return g.Wait()
}

// stranded returns the in-flight alerts up to the end of rng whose transaction is not part
// of it, such as a restored alert for a block that was reorganized.
func (m *Monitor) stranded(rng models.BlockRange) []*inFlightAlert {
	listed := make(map[common.Hash]struct{}, len(rng.Transactions))
	for _, tx := range rng.Transactions {
		listed[tx.Hash] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*inFlightAlert
	for h, entry := range m.inFlight {
		if _, ok := listed[h]; ok || entry.alert.BlockNumber > rng.To {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (m *Monitor) handleTransaction(ctx, submitCtx context.Context, tx models.Transaction) error {
	if entry, ok := m.pending(tx.Hash); ok {
		return m.deliver(submitCtx, entry)
	}
	if m.seen.Seen(tx.Hash) {
		return nil
	}

	start := time.Now()
	verdict := m.classifier.Classify(ctx, tx)
	if err := ctx.Err(); err != nil {
		return err
	}
	m.metrics.ClassifierLatency.Observe(time.Since(start).Seconds())
	m.analyzed.Add(1)
	m.metrics.TransactionsAnalyzed.Inc()
	if verdict.Source == models.SourceHeuristic {
		m.metrics.ClassifierFallbacks.Inc()
	}

	corr := m.engine.Enrich(tx, verdict)
	if !m.gate.Qualifies(corr.CompositeScore, verdict) {
		m.seen.MarkSeen(tx.Hash)
		return nil
	}
	m.threats.Add(1)
	m.metrics.ThreatsDetected.WithLabelValues(corr.Severity.String()).Inc()

	if !m.gate.ShouldAlert(tx.From, corr.CompositeScore, verdict) {
		m.logs.Infow("threat suppressed by actor cooldown",
			"tx_hash", tx.Hash.Hex(),
			"actor", tx.From.Hex(),
			"score", corr.CompositeScore)
		m.seen.MarkSeen(tx.Hash)
		return nil
	}

	return m.deliver(submitCtx, m.track(tx, verdict, corr))
}

// deliver submits the alert unless it is still waiting out its re-delivery backoff. Only a
// terminal outcome settles it; anything else fails the range so that it is delivered again.
func (m *Monitor) deliver(ctx context.Context, entry *inFlightAlert) error {
	alert := entry.alert

	unlock, err := m.lockActor(ctx, alert.Actor)
	if err != nil {
		return err
	}
	defer unlock()

	m.mu.Lock()
	if wait := entry.notBefore.Sub(TimeNow()); wait > 0 {
		m.mu.Unlock()
		return fmt.Errorf("alert %s: %w: %w for %s", alert.TxHash.Hex(), ErrAlertPending, errBackingOff, wait)
	}
	entry.attempts++
	attempt := entry.attempts
	m.mu.Unlock()

	outcome, err := m.reporter.Submit(ctx, alert)
	if err == nil && outcome.Status.Terminal() {
		m.settle(ctx, alert, outcome)
		return nil
	}
	if err == nil {
		err = fmt.Errorf("%w: %s", ErrAlertPending, outcome.Status)
	}
	if ctx.Err() != nil {
		return err
	}

	m.fail("ledger")
	m.mu.Lock()
	wait := entry.backoff.NextBackOff()
	entry.notBefore = TimeNow().Add(wait)
	m.mu.Unlock()

	logs := m.logs.With(
		"tx_hash", alert.TxHash.Hex(),
		"actor", alert.Actor.Hex(),
		"attempt", attempt,
		"retry_in", wait)
	if attempt >= m.cfg.StallAttempts {
		logs.Errorw("alert stalled, the ledger keeps failing", "error", err)
	} else {
		logs.Warnw("alert submission not settled", "error", err)
	}
	return fmt.Errorf("submit alert %s: %w", alert.TxHash.Hex(), err)
}

func (m *Monitor) settle(ctx context.Context, alert models.Alert, outcome models.Outcome) {
	m.mu.Lock()
	delete(m.inFlight, alert.TxHash)
	if outcome.Status == models.OutcomeConfirmed {
		related := append(m.related[alert.Actor], alert.TxHash)
		if len(related) > relatedAlertsLimit {
			related = related[len(related)-relatedAlertsLimit:]
		}
		m.related[alert.Actor] = related
	}
	inFlight := len(m.inFlight)
	m.mu.Unlock()

	m.seen.MarkSeen(alert.TxHash)
	m.metrics.InFlightAlerts.Set(float64(inFlight))
	m.metrics.AlertOutcomes.WithLabelValues(string(outcome.Status)).Inc()

	switch outcome.Status {
	case models.OutcomeConfirmed:
		m.alertsSent.Add(1)
	case models.OutcomeRejected:
		m.fail("ledger")
	}

	m.logs.Infow("alert settled",
		"tx_hash", alert.TxHash.Hex(),
		"actor", alert.Actor.Hex(),
		"severity", alert.Severity.String(),
		"status", outcome.Status,
		"block", outcome.InclusionBlock,
		"reason", outcome.Reason)

	entry := models.AlertEntry{
		Alert:      alert,
		Outcome:    outcome,
		RecordedAt: TimeNow().UTC(),
	}
	m.history.Add(entry)

	if m.recorder != nil {
		if err := m.recorder.RecordOutcome(ctx, entry); err != nil {
			m.fail("audit")
			m.logs.Warnw("failed to record alert outcome", "error", err, "tx_hash", alert.TxHash.Hex())
		}
	}
	if m.sink != nil {
		if err := m.sink.Publish(ctx, alert, outcome); err != nil {
			m.fail("sink")
			m.logs.Warnw("failed to publish alert outcome", "error", err, "tx_hash", alert.TxHash.Hex())
		}
	}
}

func (m *Monitor) track(tx models.Transaction, verdict models.RiskVerdict, corr models.Correlation) *inFlightAlert {
	m.mu.Lock()
	defer m.mu.Unlock()

	related := append([]common.Hash(nil), m.related[tx.From]...)
	entry := m.newInFlight(newAlert(tx, verdict, corr, related))
	m.inFlight[tx.Hash] = entry
	m.metrics.InFlightAlerts.Set(float64(len(m.inFlight)))
	return entry
}

func (m *Monitor) newInFlight(alert models.Alert) *inFlightAlert {
	return &inFlightAlert{
		alert:   alert,
		backoff: m.cfg.Redelivery.NewBackOff(),
	}
}

func (m *Monitor) pending(hash common.Hash) (*inFlightAlert, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.inFlight[hash]
	return entry, ok
}

// lockActor serializes submissions per actor. Locks are dropped once nobody holds or waits for them.
func (m *Monitor) lockActor(ctx context.Context, actor common.Address) (func(), error) {
	m.mu.Lock()
	l, ok := m.actors[actor]
	if !ok {
		l = &actorLock{ch: make(chan struct{}, 1)}
		m.actors[actor] = l
	}
	l.refs++
	m.mu.Unlock()

	release := func() {
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.actors, actor)
		}
		m.mu.Unlock()
	}

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			release()
		}, nil
	case <-ctx.Done():
		release()
		return nil, ctx.Err()
	}
}

func (m *Monitor) restore(cp models.Checkpoint) {
	m.analyzed.Store(cp.Stats.Analyzed)
	m.threats.Store(cp.Stats.ThreatsDetected)
	m.alertsSent.Store(cp.Stats.AlertsSent)
	m.errs.Store(cp.Stats.Errors)
	m.advance(cp.LastConfirmedBlock)
	m.gate.Restore(cp.Cooldowns)

	m.mu.Lock()
	for _, alert := range cp.PendingAlerts {
		m.inFlight[alert.TxHash] = m.newInFlight(alert)
	}
	m.metrics.InFlightAlerts.Set(float64(len(m.inFlight)))
	m.mu.Unlock()
}

// advance moves the confirmed height forward only.
func (m *Monitor) advance(to uint64) {
	for {
		cur := m.lastConfirmed.Load()
		if to < cur {
			return
		}
		if m.lastConfirmed.CompareAndSwap(cur, to) {
			m.metrics.LastConfirmedBlock.Set(float64(to))
			return
		}
	}
}

func (m *Monitor) fail(stage string) {
	m.errs.Add(1)
	m.metrics.Errors.WithLabelValues(stage).Inc()
}

func (m *Monitor) setSubscribed(on bool) {
	m.subscribed.Store(on)
	if on {
		m.metrics.HeadSubscribed.Set(1)
		return
	}
	m.metrics.HeadSubscribed.Set(0)
}

func (m *Monitor) logStats() {
	s := m.Stats()
	m.mu.Lock()
	inFlight := len(m.inFlight)
	m.mu.Unlock()

	m.logs.Infow("monitor stats",
		"analyzed", s.Analyzed,
		"threats_detected", s.ThreatsDetected,
		"alerts_sent", s.AlertsSent,
		"errors", s.Errors,
		"last_confirmed_block", m.lastConfirmed.Load(),
		"in_flight_alerts", inFlight,
		"dedup_size", m.seen.Len(),
		"head_subscribed", m.subscribed.Load())
}

func (m *Monitor) shutdown() error {
	m.logs.Infow("shutting down", "last_confirmed_block", m.lastConfirmed.Load())
	m.setSubscribed(false)

	if err := m.Checkpoint(); err != nil {
		return fmt.Errorf("final checkpoint: %w", err)
	}
	m.logStats()
	return nil
}

// graceContext is cancelled ShutdownGrace after ctx, so that submissions can settle.
func (m *Monitor) graceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(ctx, func() {
		time.AfterFunc(m.cfg.ShutdownGrace, cancel)
	})
	return detached, func() {
		stop()
		cancel()
	}
}

func newAlert(tx models.Transaction, verdict models.RiskVerdict, corr models.Correlation, related []common.Hash) models.Alert {
	impact := new(big.Int)
	if tx.Value != nil {
		impact.Set(tx.Value)
	}

	return models.Alert{
		ID:             uuid.NewString(),
		TxHash:         tx.Hash,
		Actor:          tx.From,
		Severity:       corr.Severity,
		Category:       verdict.Category,
		Confidence:     percent(verdict.Confidence),
		CompositeScore: percent(corr.CompositeScore),
		Description:    describe(tx, verdict, corr),
		ModelVersion:   verdict.ModelVersion,
		EconomicImpact: impact,
		RelatedAlerts:  related,
		BlockNumber:    tx.BlockNumber,
		CreatedAt:      TimeNow().UTC(),
	}
}

func describe(tx models.Transaction, verdict models.RiskVerdict, corr models.Correlation) string {
	value := decimal.Zero
	if tx.Value != nil {
		value = decimal.NewFromBigInt(tx.Value, -18)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s by %s, score %.0f, value %s ETH",
		corr.Severity, verdict.Category, tx.From.Hex(), corr.CompositeScore, value.String())
	if verdict.Signature != "" {
		fmt.Fprintf(&b, ": %s", verdict.Signature)
	}
	if flags := corr.Flags.Names(); len(flags) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(flags, ", "))
	}
	return b.String()
}

func percent(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(100, v))))
}

func headsOf(feed models.HeadFeed) <-chan uint64 {
	if feed == nil {
		return nil
	}
	return feed.Heads()
}

func errsOf(feed models.HeadFeed) <-chan error {
	if feed == nil {
		return nil
	}
	return feed.Err()
}
