package daemon

import "github.com/prometheus/client_golang/prometheus"

var (
	notifyBroadcastsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "patternd",
		Subsystem: "notifier",
		Name:      "broadcasts_total",
		Help:      "Total number of Notify calls",
	})

	notifyDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "patternd",
		Subsystem: "notifier",
		Name:      "deliveries_total",
		Help:      "Deliveries to individual subscribers by result",
	}, []string{"result"})

	notifySubscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "patternd",
		Subsystem: "notifier",
		Name:      "subscribers",
		Help:      "Current number of subscriber entries",
	})

	agentTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "patternd",
		Subsystem: "agent",
		Name:      "transitions_total",
		Help:      "Agent mood transitions",
	}, []string{"from", "to"})
)

func init() {
	prometheus.MustRegister(notifyBroadcastsTotal, notifyDeliveriesTotal, notifySubscribers, agentTransitionsTotal)
}
