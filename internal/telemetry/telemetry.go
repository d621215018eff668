// Package telemetry exposes Prometheus collectors for analysis readings.
// Collectors live on a private registry so several Recorders can coexist in
// one process (tests, replay runs) without duplicate-registration panics.
package telemetry

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/eval"
)

const namespace = "synthai"

// #region recorder
// Recorder owns the registry and the reading collectors.
type Recorder struct {
	registry     *prometheus.Registry
	readings     *prometheus.CounterVec
	detections   *prometheus.CounterVec
	coherence    prometheus.Histogram
	confidence   prometheus.Histogram
	evalFailures prometheus.Counter
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	unitBuckets := prometheus.LinearBuckets(0.1, 0.1, 10)

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		readings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_total",
			Help:      "Readings produced, by primary blended dimension.",
		}, []string{"dimension"}),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Text detections, by agreement with the geometric hint.",
		}, []string{"aligned"}),
		coherence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reading_coherence",
			Help:      "Coherence of blended vectors.",
			Buckets:   unitBuckets,
		}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reading_confidence",
			Help:      "Confidence of blended vectors.",
			Buckets:   unitBuckets,
		}),
		evalFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eval_failures_total",
			Help:      "Readings that failed post-analysis validation.",
		}),
	}
	r.registry.MustRegister(r.readings, r.detections, r.coherence, r.confidence, r.evalFailures)
	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// #endregion recorder

// #region observe
// Observe records one reading and its eval outcome.
func (r *Recorder) Observe(reading analysis.Reading, result eval.EvalResult) {
	r.readings.WithLabelValues(reading.Primary.String()).Inc()
	r.detections.WithLabelValues(strconv.FormatBool(reading.Detection.Aligned)).Inc()
	r.coherence.Observe(reading.Metrics.Coherence)
	r.confidence.Observe(reading.Metrics.Confidence)
	if !result.Passed {
		r.evalFailures.Inc()
	}
}

// #endregion observe

// #region export
// WriteTextfile writes the current values in the node-exporter textfile
// format. The write is atomic.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// #endregion export
