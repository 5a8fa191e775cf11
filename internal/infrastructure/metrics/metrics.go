// Package metrics provides Prometheus metrics for the chat-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveConnections tracks the number of open WebSocket connections.
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_active_connections",
			Help: "Number of currently open WebSocket connections",
		},
	)

	// ActiveRooms tracks the number of rooms with at least one member.
	ActiveRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_active_rooms",
			Help: "Number of rooms with at least one joined session",
		},
	)

	// MessagesTotal tracks persisted messages by kind.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of messages persisted and broadcast",
		},
		[]string{"kind"},
	)

	// BroadcastSendErrors tracks sends to dead peers during fan-out.
	BroadcastSendErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_broadcast_send_errors_total",
			Help: "Total number of failed sends during room fan-out",
		},
	)

	// BroadcastFanout tracks the recipient count per broadcast.
	BroadcastFanout = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_broadcast_fanout_size",
			Help:    "Number of recipients per broadcast",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// HistoryReplayDuration tracks how long history replay takes on join.
	HistoryReplayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_history_replay_duration_seconds",
			Help:    "Duration of history load and send on join",
			Buckets: prometheus.DefBuckets,
		},
	)

	// HTTPRequests tracks REST traffic.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration tracks REST latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordConnectionOpened increments the connection gauge.
func RecordConnectionOpened() {
	ActiveConnections.Inc()
}

// RecordConnectionClosed decrements the connection gauge.
func RecordConnectionClosed() {
	ActiveConnections.Dec()
}

// RecordMessage counts one persisted-and-broadcast message.
func RecordMessage(kind string) {
	MessagesTotal.WithLabelValues(kind).Inc()
}

// ObserveFanout records the recipient count of one broadcast.
func ObserveFanout(n int) {
	BroadcastFanout.Observe(float64(n))
}

// RecordRequest records one completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	HTTPRequests.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}
