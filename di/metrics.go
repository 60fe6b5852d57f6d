package di

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes, used as the "outcome" label of luckydep_resolutions_total.
const (
	OutcomeResolved = "resolved"
	OutcomeCached   = "cached"
	OutcomeMissing  = "missing"
	OutcomeFailed   = "failed"
	OutcomeCycle    = "cycle"
)

type metrics struct {
	resolutions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// newMetrics returns nil when reg is nil; a nil *metrics records nothing.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	return &metrics{
		resolutions: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luckydep",
			Name:      "resolutions_total",
			Help:      "Invoke calls by outcome.",
		}, []string{"outcome"})),
		duration: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luckydep",
			Name:      "resolution_duration_seconds",
			Help:      "Time spent running providers, nested resolutions included.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		})),
	}
}

// register returns the collector already registered under the same
// descriptor, if any, so several containers can report to one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) count(outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}

func (m *metrics) observe(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
	m.duration.Observe(took.Seconds())
}
