package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	rowsDiscarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "asistencia",
			Name:      "rows_discarded_total",
			Help:      "Count of raw punch rows dropped during normalization, by reason.",
		},
		[]string{"reason"},
	)

	eventsEmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "asistencia",
			Name:      "events_emitted_total",
			Help:      "Count of normalized punch events emitted.",
		},
	)

	normalizeRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "asistencia",
			Name:      "normalize_runs_total",
			Help:      "Count of normalization passes over a raw dataset.",
		},
	)

	dayAnalyses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "asistencia",
			Name:      "day_analyses_total",
			Help:      "Count of per-(employee, date) analyses computed.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "asistencia",
			Name:      "http_requests_total",
			Help:      "Count of API requests by endpoint.",
		},
		[]string{"endpoint"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(rowsDiscarded, eventsEmitted, normalizeRuns, dayAnalyses, httpRequests)
	})
}

func IncRowDiscarded(reason string) {
	rowsDiscarded.WithLabelValues(reason).Inc()
}

func AddEventsEmitted(n int) {
	eventsEmitted.Add(float64(n))
}

func IncNormalizeRun() {
	normalizeRuns.Inc()
}

func AddDayAnalyses(n int) {
	dayAnalyses.Add(float64(n))
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}
