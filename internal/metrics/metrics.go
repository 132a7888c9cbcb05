package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type MonitorMetrics struct {
	TransactionsAnalyzed prometheus.Counter
	ThreatsDetected      *prometheus.CounterVec
	AlertOutcomes        *prometheus.CounterVec
	Errors               *prometheus.CounterVec
	ClassifierFallbacks  prometheus.Counter
	ClassifierLatency    prometheus.Histogram
	LastConfirmedBlock   prometheus.Gauge
	InFlightAlerts       prometheus.Gauge
	HeadSubscribed       prometheus.Gauge
}

func NewMonitorMetrics() MonitorMetrics {
	return MonitorMetrics{
		TransactionsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threatwatch_transactions_analyzed_total",
			Help: "Total number of transactions classified",
		}),
		ThreatsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threatwatch_threats_detected_total",
			Help: "Total number of transactions whose composite score qualified as a threat",
		}, []string{"severity"}),
		AlertOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threatwatch_alerts_sent_total",
			Help: "Total number of alerts that reached a ledger outcome",
		}, []string{"status"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threatwatch_errors_total",
			Help: "Total number of errors by pipeline stage",
		}, []string{"stage"}),
		ClassifierFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "threatwatch_classifier_fallbacks_total",
			Help: "Total number of verdicts produced by the local heuristic",
		}),
		ClassifierLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "threatwatch_classifier_latency_seconds",
			Help:    "Latency of transaction classification",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		LastConfirmedBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "threatwatch_last_confirmed_block",
			Help: "Highest block whose transactions all reached a terminal state",
		}),
		InFlightAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "threatwatch_inflight_alerts",
			Help: "Alerts waiting for a terminal ledger outcome",
		}),
		HeadSubscribed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "threatwatch_head_subscription_active",
			Help: "1 while new heads arrive over a subscription, 0 while polling only",
		}),
	}
}

func (m MonitorMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.TransactionsAnalyzed,
		m.ThreatsDetected,
		m.AlertOutcomes,
		m.Errors,
		m.ClassifierFallbacks,
		m.ClassifierLatency,
		m.LastConfirmedBlock,
		m.InFlightAlerts,
		m.HeadSubscribed,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
