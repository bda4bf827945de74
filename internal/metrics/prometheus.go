package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Pipeline metrics
	PipelineRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartrisk_pipeline_runs_total",
			Help: "Total number of risk pipeline recomputations",
		},
		[]string{"status"}, // status: the selected recommendation status
	)

	PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartrisk_pipeline_duration_seconds",
			Help:    "Risk pipeline recomputation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	PipelineLastRun = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "smartrisk_pipeline_last_run_timestamp",
			Help: "Unix timestamp of the last pipeline recomputation",
		},
	)

	// Risk metrics
	DrawdownPercent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "smartrisk_drawdown_percent",
			Help: "Current drawdown from the monthly peak in percent",
		},
	)

	ProtectionSeverity = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "smartrisk_protection_severity",
			Help: "Current protection level severity rank (0=safe .. 4=emergency)",
		},
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(PipelineRuns)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(PipelineLastRun)
	prometheus.MustRegister(DrawdownPercent)
	prometheus.MustRegister(ProtectionSeverity)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordPipelineRun records one recomputation pass
func RecordPipelineRun(status string, duration time.Duration, drawdownPct float64, severity int) {
	PipelineRuns.WithLabelValues(status).Inc()
	PipelineDuration.Observe(duration.Seconds())
	PipelineLastRun.SetToCurrentTime()
	DrawdownPercent.Set(drawdownPct)
	ProtectionSeverity.Set(float64(severity))
}
