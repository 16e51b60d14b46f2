package metrics

import "github.com/prometheus/client_golang/prometheus"

// Match pipeline Prometheus metrics.
var (
	MatchAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchd",
			Name:      "match_analyses_total",
			Help:      "Total number of match analyses",
		},
		[]string{"verdict", "status"},
	)

	MatchAnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "matchd",
			Name:      "match_analysis_duration_seconds",
			Help:      "End-to-end match analysis duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	MatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "matchd",
			Name:      "match_score",
			Help:      "Distribution of overall match scores",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	ExplainRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchd",
			Name:      "explain_requests_total",
			Help:      "Total explanation requests by source",
		},
		[]string{"source"}, // "llm" / "fallback"
	)

	ExplainCostMicroUSD = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchd",
			Name:      "explain_cost_microusd_total",
			Help:      "Accumulated explanation spend in micro-USD",
		},
		[]string{"provider", "model"},
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers match pipeline metrics. Must be called once from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchAnalysesTotal)
	prometheus.MustRegister(MatchAnalysisDuration)
	prometheus.MustRegister(MatchScore)
	prometheus.MustRegister(ExplainRequestsTotal)
	prometheus.MustRegister(ExplainCostMicroUSD)
	matchMetricsRegistered = true
}
