// Package metrics records prop contract and locator results as Prometheus
// metrics and writes them in the node_exporter textfile format, so CI jobs
// can publish component health alongside their test results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/testkit/internal/config"
)

// Result labels.
const (
	ResultPass  = "pass"
	ResultFail  = "fail"
	ResultError = "error"
)

// Options configures a Recorder.
type Options struct {
	// Namespace is the metrics namespace (default: "vtestkit").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for check duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
}

// Option configures a Recorder.
type Option func(*Options)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(o *Options) {
		o.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *Options) {
		o.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(o *Options) {
		o.Buckets = buckets
	}
}

// Recorder holds one private registry. Recorders are independent of each
// other and of the Prometheus default registry.
type Recorder struct {
	registry *prometheus.Registry

	checksTotal     *prometheus.CounterVec
	violationsTotal *prometheus.CounterVec
	checkDuration   *prometheus.HistogramVec
	locateTotal     *prometheus.CounterVec
	locateMatches   prometheus.Histogram
}

// New creates a Recorder.
func New(opts ...Option) *Recorder {
	o := Options{
		Namespace: config.DefaultNamespace,
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		checksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.Namespace,
			Name:        "checks_total",
			Help:        "Total number of prop contract checks",
			ConstLabels: o.ConstLabels,
		}, []string{"component", "result"}),

		violationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.Namespace,
			Name:        "violations_total",
			Help:        "Total number of prop contract violations",
			ConstLabels: o.ConstLabels,
		}, []string{"component"}),

		checkDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.Namespace,
			Name:        "check_duration_seconds",
			Help:        "Prop contract check duration in seconds",
			ConstLabels: o.ConstLabels,
			Buckets:     o.Buckets,
		}, []string{"component"}),

		locateTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.Namespace,
			Name:        "locate_total",
			Help:        "Total number of test attribute lookups",
			ConstLabels: o.ConstLabels,
		}, []string{"result"}),

		locateMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   o.Namespace,
			Name:        "locate_matches",
			Help:        "Number of nodes matched per test attribute lookup",
			ConstLabels: o.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 50},
		}),
	}
}

// ObserveCheck records the outcome of one prop contract check.
// result is ResultPass, ResultFail or ResultError.
func (r *Recorder) ObserveCheck(component, result string, violations int, elapsed time.Duration) {
	r.checksTotal.WithLabelValues(component, result).Inc()
	if violations > 0 {
		r.violationsTotal.WithLabelValues(component).Add(float64(violations))
	}
	r.checkDuration.WithLabelValues(component).Observe(elapsed.Seconds())
}

// ObserveLocate records the outcome of one test attribute lookup.
func (r *Recorder) ObserveLocate(result string, matches int) {
	r.locateTotal.WithLabelValues(result).Inc()
	if result != ResultError {
		r.locateMatches.Observe(float64(matches))
	}
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the textfile collector format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
