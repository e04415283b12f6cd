package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RelayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blankchart",
			Subsystem: "api",
			Name:      "relay_requests_total",
			Help:      "Total chat relay calls to the model provider",
		},
		[]string{"outcome"},
	)

	RelayLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "blankchart",
			Subsystem: "api",
			Name:      "relay_latency_seconds",
			Help:      "Latency of model provider round trips",
			Buckets:   prometheus.DefBuckets,
		},
	)

	TranscriptDispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blankchart",
			Subsystem: "api",
			Name:      "transcript_dispatches_total",
			Help:      "Transcript forwards to the form relay, by trigger and outcome",
		},
		[]string{"trigger", "outcome"},
	)

	SessionsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "blankchart",
			Subsystem: "api",
			Name:      "sessions_started_total",
			Help:      "Chat sessions started",
		},
	)

	SessionMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blankchart",
			Subsystem: "api",
			Name:      "session_messages_total",
			Help:      "Messages appended to chat sessions",
		},
		[]string{"role"},
	)
)

// Outcome labels shared by the counters above.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
