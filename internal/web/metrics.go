package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

// metrics holds the server's Prometheus collectors. Each Server owns its
// registry so several servers can run in one process.
type metrics struct {
	registry *prometheus.Registry
	imports  *prometheus.CounterVec
	rows     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics(service *core.Service) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "csv_imports_total",
			Help: "Processed imports by template and status.",
		}, []string{"template", "status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "csv_import_rows_total",
			Help: "Data rows read by processed imports.",
		}, []string{"template"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "csv_import_failures_total",
			Help: "Imports that failed before processing, by error code.",
		}, []string{"code"}),
	}

	m.registry.MustRegister(
		m.imports,
		m.rows,
		m.failures,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "csv_imports_active",
			Help: "Imports currently holding a limiter slot.",
		}, func() float64 {
			return float64(service.LimiterStatus().Active)
		}),
	)
	return m
}

// observeImport records a processed import.
func (m *metrics) observeImport(entry core.ImportEntry) {
	template := templateLabel(entry.Template)
	m.imports.WithLabelValues(template, string(entry.Status)).Inc()
	m.rows.WithLabelValues(template).Add(float64(entry.Rows))
}

// observeFailure records an import that returned an error.
func (m *metrics) observeFailure(err error) {
	m.failures.WithLabelValues(core.MapError(err).Code).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// templateLabel keeps label cardinality bounded to registered templates.
func templateLabel(name string) string {
	if _, ok := core.Get(name); ok {
		return name
	}
	return "unknown"
}
