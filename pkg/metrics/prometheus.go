// Package metrics provides Prometheus metrics for the hireboard assessment core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the assessment core.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Assessment lifecycle
	assessmentsCreated prometheus.Counter
	assessmentsTotal   prometheus.Gauge
	scoreUpdates       prometheus.Counter
	scoreClamps        prometheus.Counter
	notesRecorded      prometheus.Counter

	// Auto-save discipline
	autosaveFlushes  *prometheus.CounterVec
	autosaveCancels  prometheus.Counter
	autosaveLatency  prometheus.Histogram
	validationErrors *prometheus.CounterVec

	// Comparison and selection
	comparisonsSaved   prometheus.Counter
	comparisonsDeleted prometheus.Counter
	selectionSize      prometheus.Gauge

	// Scoring distribution
	levelScore *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hireboard",
		subsystem:        "assessments",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// scoreBuckets covers the normalized 0-100 level score range.
var scoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100} //nolint:gochecknoglobals // shared bucket layout

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.assessmentsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "created_total",
		Help:      "Total number of assessments created",
	})

	m.assessmentsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total",
		Help:      "Current number of assessments in the store",
	})

	m.scoreUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_updates_total",
		Help:      "Total number of competency score writes",
	})

	m.scoreClamps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_clamps_total",
		Help:      "Total number of score writes clamped into the valid range",
	})

	m.notesRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "audio_notes_recorded_total",
		Help:      "Total number of audio notes attached to assessments",
	})

	m.autosaveFlushes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "autosave_flush_total",
			Help:      "Total number of auto-save flushes by trigger (debounce, flush or close)",
		},
		[]string{"trigger"},
	)

	m.autosaveCancels = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "autosave_cancel_total",
		Help:      "Total number of pending auto-saves superseded by a newer edit",
	})

	m.autosaveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "autosave_latency_milliseconds",
		Help:      "Histogram of store commit latency for auto-save flushes",
		Buckets:   m.histogramBuckets,
	})

	m.validationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected operations by reason",
		},
		[]string{"reason"},
	)

	m.comparisonsSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_saved_total",
		Help:      "Total number of named comparisons saved",
	})

	m.comparisonsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_deleted_total",
		Help:      "Total number of saved comparisons deleted",
	})

	m.selectionSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_size",
		Help:      "Current number of assessments staged for comparison",
	})

	m.levelScore = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "level_score",
			Help:      "Distribution of computed 0-100 level scores by seniority level",
			Buckets:   scoreBuckets,
		},
		[]string{"level"},
	)
}

// Registry returns the registry the global manager registers on.
// The CLI uses it to gather and print a metrics snapshot.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Global helper functions mirroring the manager's metrics.

// RecordAssessmentCreated increments the created counter.
func RecordAssessmentCreated() {
	if globalManager.enabled {
		globalManager.assessmentsCreated.Inc()
	}
}

// UpdateAssessmentsTotal sets the store size gauge.
func UpdateAssessmentsTotal(n int) {
	if globalManager.enabled {
		globalManager.assessmentsTotal.Set(float64(n))
	}
}

// RecordScoreUpdate increments the score write counter.
func RecordScoreUpdate() {
	if globalManager.enabled {
		globalManager.scoreUpdates.Inc()
	}
}

// RecordScoreClamp increments the clamp counter.
func RecordScoreClamp() {
	if globalManager.enabled {
		globalManager.scoreClamps.Inc()
	}
}

// RecordAudioNote increments the audio note counter.
func RecordAudioNote() {
	if globalManager.enabled {
		globalManager.notesRecorded.Inc()
	}
}

// RecordAutosaveFlush increments the flush counter for a trigger
// ("debounce" or "close").
func RecordAutosaveFlush(trigger string) {
	if globalManager.enabled {
		globalManager.autosaveFlushes.WithLabelValues(trigger).Inc()
	}
}

// RecordAutosaveCancel increments the superseded-timer counter.
func RecordAutosaveCancel() {
	if globalManager.enabled {
		globalManager.autosaveCancels.Inc()
	}
}

// RecordAutosaveLatency observes a store commit latency in milliseconds.
func RecordAutosaveLatency(ms float64) {
	if globalManager.enabled {
		globalManager.autosaveLatency.Observe(ms)
	}
}

// RecordValidationError increments the rejected-operation counter for a reason.
func RecordValidationError(reason string) {
	if globalManager.enabled {
		globalManager.validationErrors.WithLabelValues(reason).Inc()
	}
}

// RecordComparisonSaved increments the saved-comparison counter.
func RecordComparisonSaved() {
	if globalManager.enabled {
		globalManager.comparisonsSaved.Inc()
	}
}

// RecordComparisonDeleted increments the deleted-comparison counter.
func RecordComparisonDeleted() {
	if globalManager.enabled {
		globalManager.comparisonsDeleted.Inc()
	}
}

// UpdateSelectionSize sets the selection gauge.
func UpdateSelectionSize(n int) {
	if globalManager.enabled {
		globalManager.selectionSize.Set(float64(n))
	}
}

// ObserveLevelScore records a computed level score for a level.
func ObserveLevelScore(level string, score int) {
	if globalManager.enabled {
		globalManager.levelScore.WithLabelValues(level).Observe(float64(score))
	}
}
