// Package metrics exposes Prometheus collectors for the HTTP API, the
// persistence writer and the AI advisor.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the set of hooks the rest of the application reports to.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordPersistWrite(key string, success bool, duration time.Duration)
	RecordPersistSuperseded(key string)
	RecordAdvisorCall(operation string, success bool, duration time.Duration)
	RecordCircuitState(name string, open bool)
}

// NoOp discards every measurement. It is the default for tests and the CLI.
type NoOp struct{}

func (NoOp) RecordHTTPRequest(string, string, int, time.Duration) {}
func (NoOp) RecordPersistWrite(string, bool, time.Duration)      {}
func (NoOp) RecordPersistSuperseded(string)                      {}
func (NoOp) RecordAdvisorCall(string, bool, time.Duration)       {}
func (NoOp) RecordCircuitState(string, bool)                     {}

// Collector implements Recorder on Prometheus metric vectors.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	persistWrites     *prometheus.CounterVec
	persistSuperseded *prometheus.CounterVec
	persistLatency    *prometheus.HistogramVec

	advisorCalls   *prometheus.CounterVec
	advisorLatency *prometheus.HistogramVec
	circuitOpen    *prometheus.GaugeVec
}

// NewCollector creates the collectors under the given namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		persistWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persistence_writes_total",
				Help:      "Collection snapshots written to storage by key and result",
			},
			[]string{"key", "result"},
		),
		persistSuperseded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persistence_superseded_total",
				Help:      "Collection snapshots replaced by a newer one before they were written",
			},
			[]string{"key"},
		),
		persistLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "persistence_write_duration_seconds",
				Help:      "Storage write latency",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"key"},
		),
		advisorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "advisor_calls_total",
				Help:      "Generative AI calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		advisorLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "advisor_call_duration_seconds",
				Help:      "Generative AI call latency",
				Buckets:   []float64{.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"operation"},
		),
		circuitOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_open",
				Help:      "1 while the named circuit breaker is open",
			},
			[]string{"name"},
		),
	}
}

// Register registers all metrics with the given Prometheus registry.
func (c *Collector) Register(registry prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{
		c.httpRequests,
		c.httpLatency,
		c.persistWrites,
		c.persistSuperseded,
		c.persistLatency,
		c.advisorCalls,
		c.advisorLatency,
		c.circuitOpen,
	} {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordPersistWrite(key string, success bool, duration time.Duration) {
	c.persistWrites.WithLabelValues(key, result(success)).Inc()
	c.persistLatency.WithLabelValues(key).Observe(duration.Seconds())
}

func (c *Collector) RecordPersistSuperseded(key string) {
	c.persistSuperseded.WithLabelValues(key).Inc()
}

func (c *Collector) RecordAdvisorCall(operation string, success bool, duration time.Duration) {
	c.advisorCalls.WithLabelValues(operation, result(success)).Inc()
	c.advisorLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (c *Collector) RecordCircuitState(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	c.circuitOpen.WithLabelValues(name).Set(v)
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
