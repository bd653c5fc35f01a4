package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Runs created through the API, by run kind (actual, experiment, scenario)
	RunsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "capital_runs_created_total",
		Help: "Total runs created through the API",
	}, []string{"kind"})

	// Experiment runs created by CSV bulk import
	ImportedRows = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csv_import_rows_total",
		Help: "Total experiment runs created by CSV import",
	})

	ImportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "csv_import_duration_seconds",
		Help:    "Latency of CSV import processing",
		Buckets: prometheus.DefBuckets,
	})

	ResetTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "data_reset_total",
		Help: "How many times all tables were reset to seed state",
	})
)

func Init() {
	prometheus.MustRegister(
		RunsCreated,
		ImportedRows,
		ImportDuration,
		ResetTotal,
	)
}
