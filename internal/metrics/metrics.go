// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripmate"

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "Connect RPCs handled, by procedure and result code.",
	}, []string{"procedure", "code"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Connect RPC latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	aiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_calls_total",
		Help:      "Generative AI calls, by operation and outcome.",
	}, []string{"operation", "outcome"})

	settlementTransfers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "settlement_transfers",
		Help:      "Number of transfers in the most recently computed settlement plan.",
	})

	amqpPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amqp_changes_published_total",
		Help:      "Storage changes forwarded to the message broker, by collection.",
	}, []string{"collection"})
)

// AI call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
)

// ObserveRPC records one finished RPC.
func ObserveRPC(procedure, code string, elapsed time.Duration) {
	rpcRequests.WithLabelValues(procedure, code).Inc()
	rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// ObserveAICall records the outcome of one explorer operation.
func ObserveAICall(operation, outcome string) {
	aiCalls.WithLabelValues(operation, outcome).Inc()
}

// SetSettlementTransfers records the size of the latest settlement plan.
func SetSettlementTransfers(n int) {
	settlementTransfers.Set(float64(n))
}

// ObservePublished counts a change forwarded to the broker.
func ObservePublished(collection string) {
	amqpPublished.WithLabelValues(collection).Inc()
}
