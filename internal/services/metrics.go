package services

import "github.com/prometheus/client_golang/prometheus"

// Domain-level Prometheus collectors. HTTP-level metrics live in the
// middleware package; these track the search engine and dataset lifecycle.
var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of query evaluations by mode.",
		},
		[]string{"mode"},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_count",
			Help:    "Number of results returned per evaluation.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	datasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the current dataset snapshot.",
		},
	)

	reloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Dataset reload attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal, searchResults, datasetRecords, reloadsTotal)
}
