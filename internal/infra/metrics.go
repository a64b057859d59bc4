package infra

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters on a private registry so tests can build
// as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	BlueprintsGenerated *prometheus.CounterVec
	QuestionsComputed   prometheus.Counter
	LibraryOperations   *prometheus.CounterVec
}

// NewMetrics registers the counters plus Go runtime collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		BlueprintsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprints_generated_total",
			Help: "Blueprints generated, partitioned by goal.",
		}, []string{"goal"}),
		QuestionsComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "questions_computed_total",
			Help: "Question lists computed for a choice structure.",
		}),
		LibraryOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "library_operations_total",
			Help: "Library operations, partitioned by operation and result.",
		}, []string{"op", "result"}),
	}
}

// Registry exposes the underlying registry as a gatherer.
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveLibrary counts a library operation as ok or error.
func (m *Metrics) ObserveLibrary(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.LibraryOperations.WithLabelValues(op, result).Inc()
}
