package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHooks records pipeline and server events as Prometheus metrics.
// It owns a private registry so several instances can coexist in tests.
type PrometheusHooks struct {
	registry *prometheus.Registry

	StageDuration *prometheus.HistogramVec
	StageErrors   *prometheus.CounterVec
	GraphNodes    prometheus.Gauge
	GraphEdges    prometheus.Gauge

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewPrometheusHooks creates hooks backed by a fresh registry.
func NewPrometheusHooks() *PrometheusHooks {
	reg := prometheus.NewRegistry()
	h := &PrometheusHooks{registry: reg}

	h.StageDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightgraph_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
	h.StageErrors = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_stage_errors_total",
			Help: "Total number of failed pipeline stages",
		},
		[]string{"stage"},
	)
	h.GraphNodes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "flightgraph_graph_nodes",
			Help: "Number of airports in the last built graph",
		},
	)
	h.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "flightgraph_graph_edges",
			Help: "Number of distinct connections in the last built graph",
		},
	)
	h.HTTPRequestsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_http_requests_total",
			Help: "Total number of scene server requests",
		},
		[]string{"method", "route", "status"},
	)
	h.HTTPRequestDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightgraph_http_request_duration_seconds",
			Help:    "Scene server request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	return h
}

// Registry returns the underlying Prometheus registry.
func (h *PrometheusHooks) Registry() *prometheus.Registry { return h.registry }

// Handler returns an HTTP handler exposing the registry.
func (h *PrometheusHooks) Handler() http.Handler {
	return promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry})
}

func (h *PrometheusHooks) OnStageStart(context.Context, string) {}

func (h *PrometheusHooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	h.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		h.StageErrors.WithLabelValues(stage).Inc()
	}
}

func (h *PrometheusHooks) OnGraphBuilt(_ context.Context, nodes, edges int) {
	h.GraphNodes.Set(float64(nodes))
	h.GraphEdges.Set(float64(edges))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ ServerHooks   = (*PrometheusHooks)(nil)
)
