package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "partymanager"

// NewCounter registers the service counter vec on the default registry.
// Call it once per process.
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(counterOpts(), []string{"result"})
}

// NewUnregisteredCounter is NewCounter without registration, for tools
// and tests that build services repeatedly.
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(counterOpts(), []string{"result"})
}

func counterOpts() prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "general_counters",
		Help:      "Counts of person lifecycle operations and requests, by result.",
	}
}
