package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// TicksTotal counts completed simulation ticks.
	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleet_ticks_total",
			Help: "Total number of simulation ticks processed.",
		},
	)

	// SubscribersConnected tracks currently connected WebSocket subscribers.
	SubscribersConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleet_subscribers_connected",
			Help: "Number of currently connected WebSocket subscribers.",
		},
	)

	// BroadcastDuration records how long fan-out of one tick batch takes.
	BroadcastDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fleet_broadcast_duration_seconds",
			Help:    "Time spent fanning out one snapshot batch to all subscribers.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(TicksTotal, SubscribersConnected, BroadcastDuration)
}
