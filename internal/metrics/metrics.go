// Package metrics provides Prometheus metrics for extraction runs.
//
// The CLI is short-lived, so metrics are not served over HTTP; they are
// written in text exposition format for the node_exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// Outcome label values.
const (
	OutcomeSuccess          = "success"
	OutcomeExtraction       = "extraction_error"
	OutcomeMissingAttribute = "missing_attribute"
	OutcomeTimestampFormat  = "timestamp_format"
	OutcomeOther            = "error"
)

// Metrics holds the extraction metrics and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	ExtractionsTotal   *prometheus.CounterVec
	ExtractionDuration *prometheus.HistogramVec
	LastRunTimestamp   prometheus.Gauge
}

// New creates the metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ExtractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "muninn_geoms_extractions_total",
				Help: "Total number of GEOMS metadata extractions by outcome",
			},
			[]string{"outcome"},
		),
		ExtractionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "muninn_geoms_extraction_duration_seconds",
				Help:    "Duration of GEOMS metadata extractions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "muninn_geoms_last_run_timestamp_seconds",
				Help: "Unix time at which the last extraction finished",
			},
		),
	}
}

// Outcome classifies an extraction error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, geoms.ErrMissingAttribute):
		return OutcomeMissingAttribute
	case errors.Is(err, geoms.ErrTimestampFormat):
		return OutcomeTimestampFormat
	case errors.Is(err, geoms.ErrExtraction):
		return OutcomeExtraction
	default:
		return OutcomeOther
	}
}

// Observe records one extraction that took d and ended with err.
func (m *Metrics) Observe(err error, d time.Duration) {
	outcome := Outcome(err)
	m.ExtractionsTotal.WithLabelValues(outcome).Inc()
	m.ExtractionDuration.WithLabelValues(outcome).Observe(d.Seconds())
	m.LastRunTimestamp.SetToCurrentTime()
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile atomically writes all metrics to filename.
func (m *Metrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}
