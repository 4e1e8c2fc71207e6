package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	EngineQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dramarec",
			Name:      "engine_queries_total",
			Help:      "Total recommendation queries served",
		},
		[]string{"mode", "status"},
	)

	EngineQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dramarec",
			Name:      "engine_query_duration_seconds",
			Help:      "Recommendation query duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"mode"},
	)

	CatalogRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dramarec",
			Name:      "catalog_records",
			Help:      "Records in the loaded catalog snapshot",
		},
	)

	VocabularyTerms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dramarec",
			Name:      "vocabulary_terms",
			Help:      "Distinct terms in the TF-IDF vocabulary",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(EngineQueriesTotal)
	prometheus.MustRegister(EngineQueryDuration)
	prometheus.MustRegister(CatalogRecords)
	prometheus.MustRegister(VocabularyTerms)
	engineMetricsRegistered = true
}
