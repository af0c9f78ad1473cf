// Package metrics provides Prometheus metrics for the fitness tracker.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the tracker's Prometheus collectors.
type Manager struct {
	namespace       string
	subsystem       string
	caloriesBuckets []float64
	distanceBuckets []float64
	durationBuckets []float64
	enabled         bool
	registry        prometheus.Registerer
	gatherer        prometheus.Gatherer

	trainingsProcessed *prometheus.CounterVec
	trainingErrors     *prometheus.CounterVec
	caloriesSpent      *prometheus.HistogramVec
	distanceCovered    *prometheus.HistogramVec
	batchDuration      prometheus.Histogram
	batchSize          prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level helpers

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "fittrack",
		subsystem:       "calculator",
		caloriesBuckets: []float64{50, 100, 200, 300, 500, 750, 1000, 1500, 2000},
		distanceBuckets: []float64{0.5, 1, 2, 5, 10, 21.1, 42.2},
		durationBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		enabled:         true,
		registry:        prometheus.DefaultRegisterer,
		gatherer:        prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.trainingsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trainings_processed_total",
		Help:      "Total number of trainings summarized, by activity code",
	}, []string{"type"})

	m.trainingErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_errors_total",
		Help:      "Total number of packages that could not be summarized, by reason",
	}, []string{"reason"})

	m.caloriesSpent = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_calories",
		Help:      "Calories burned per training in kcal",
		Buckets:   m.caloriesBuckets,
	}, []string{"type"})

	m.distanceCovered = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_distance_km",
		Help:      "Distance covered per training in km",
		Buckets:   m.distanceBuckets,
	}, []string{"type"})

	m.batchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_duration_milliseconds",
		Help:      "Time spent processing a sensor batch in milliseconds",
		Buckets:   m.durationBuckets,
	})

	m.batchSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Number of packages in the last sensor batch",
	})
}

// RecordTraining records a successfully summarized training.
func (m *Manager) RecordTraining(code string, distanceKm, calories float64) {
	if !m.enabled {
		return
	}
	m.trainingsProcessed.WithLabelValues(code).Inc()
	m.distanceCovered.WithLabelValues(code).Observe(distanceKm)
	m.caloriesSpent.WithLabelValues(code).Observe(calories)
}

// RecordError counts a failed package.
func (m *Manager) RecordError(reason string) {
	if !m.enabled {
		return
	}
	m.trainingErrors.WithLabelValues(reason).Inc()
}

// RecordBatch records the size and duration of a processed batch.
func (m *Manager) RecordBatch(size int, durationMs float64) {
	if !m.enabled {
		return
	}
	m.batchSize.Set(float64(size))
	m.batchDuration.Observe(durationMs)
}

// Summary gathers the registry into "name{labels}" -> value. Counters and
// gauges report their value, histograms their sample count.
func (m *Manager) Summary() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			key := mf.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[key] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				out[key] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

// RecordTraining records a training on the global manager.
func RecordTraining(code string, distanceKm, calories float64) {
	globalManager.RecordTraining(code, distanceKm, calories)
}

// RecordError counts a failed package on the global manager.
func RecordError(reason string) {
	globalManager.RecordError(reason)
}

// RecordBatch records a batch on the global manager.
func RecordBatch(size int, durationMs float64) {
	globalManager.RecordBatch(size, durationMs)
}

// Summary gathers the global registry.
func Summary() (map[string]float64, error) {
	return globalManager.Summary()
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
