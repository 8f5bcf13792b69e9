// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loan_optimizer"

// Advisory outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeCached    = "cached"
	OutcomeFallback  = "fallback"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	Calculations   *prometheus.CounterVec
	Advisory       *prometheus.CounterVec
	LLMCallLatency prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Loan calculations by operation and result.",
		}, []string{"operation", "result"}),
		Advisory: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisory_requests_total",
			Help:      "Advisory text requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
		LLMCallLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Latency of text-generation calls, retries included.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}
	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Calculations, m.Advisory, m.LLMCallLatency)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation counts one calculation; nil receivers are ignored.
func (m *Metrics) ObserveCalculation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Calculations.WithLabelValues(operation, result).Inc()
}

// ObserveAdvisory counts one advisory request; nil receivers are ignored.
func (m *Metrics) ObserveAdvisory(kind, outcome string) {
	if m == nil {
		return
	}
	m.Advisory.WithLabelValues(kind, outcome).Inc()
}
