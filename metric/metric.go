// Package metric defines the Prometheus instrumentation for an export run.
package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains all export-level metrics.
type Metrics struct {
	// TriplesWritten counts statement lines by emitting component
	// (vocabulary, schema, instance).
	TriplesWritten *prometheus.CounterVec

	// SchemasMapped counts schemas processed.
	SchemasMapped prometheus.Counter

	// ClassesMapped counts classes emitted (navigation relationships are
	// skipped and not counted).
	ClassesMapped prometheus.Counter

	// InstancesMapped counts instances by kind.
	InstancesMapped *prometheus.CounterVec

	// ValuesSkipped counts property values dropped by the recoverable
	// skip policy, by reason.
	ValuesSkipped *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all export metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		TriplesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecrdf",
				Subsystem: "output",
				Name:      "triples_total",
				Help:      "Total number of statement lines written",
			},
			[]string{"component"},
		),
		SchemasMapped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ecrdf",
				Subsystem: "mapping",
				Name:      "schemas_total",
				Help:      "Total number of schemas mapped",
			},
		),
		ClassesMapped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ecrdf",
				Subsystem: "mapping",
				Name:      "classes_total",
				Help:      "Total number of classes mapped",
			},
		),
		InstancesMapped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecrdf",
				Subsystem: "mapping",
				Name:      "instances_total",
				Help:      "Total number of instances mapped",
			},
			[]string{"kind"},
		),
		ValuesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecrdf",
				Subsystem: "mapping",
				Name:      "values_skipped_total",
				Help:      "Total number of property values skipped",
			},
			[]string{"reason"},
		),
	}
}

// Register registers all metrics with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.TriplesWritten,
		m.SchemasMapped,
		m.ClassesMapped,
		m.InstancesMapped,
		m.ValuesSkipped,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
