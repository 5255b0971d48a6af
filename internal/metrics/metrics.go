package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage label values.
const (
	StageTranscription = "transcription"
	StageSummarization = "summarization"
)

// Unit status label values.
const (
	UnitOK      = "ok"
	UnitFailed  = "failed"
	UnitSkipped = "skipped"
)

var (
	unitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lecture_units_total",
		Help: "Number of pipeline work units handled, by stage and outcome.",
	}, []string{"stage", "status"})

	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lecture_stage_duration_seconds",
		Help:    "Wall-clock duration of pipeline stages.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 14),
	}, []string{"stage"})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lecture_pipeline_runs_total",
		Help: "Completed pipeline runs by result.",
	}, []string{"result"})

	pipelineRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lecture_pipeline_running",
		Help: "Whether a pipeline run is currently active (0 or 1).",
	})
)

// RecordUnit counts one handled work unit.
func RecordUnit(stage, status string) {
	unitsTotal.WithLabelValues(stage, status).Inc()
}

// ObserveStageDuration records how long a stage took.
func ObserveStageDuration(stage string, d time.Duration) {
	stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordRun counts one finished pipeline run ("success", "stopped", "error").
func RecordRun(result string) {
	runsTotal.WithLabelValues(result).Inc()
}

// SetPipelineRunning flips the liveness gauge.
func SetPipelineRunning(running bool) {
	if running {
		pipelineRunning.Set(1)
		return
	}
	pipelineRunning.Set(0)
}
