package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moneywise"

// Recorder exports dashboard activity as Prometheus metrics. It implements
// application.Observer and keeps its own registry, so several recorders can
// live in one process.
type Recorder struct {
	registry *prometheus.Registry

	notificationsRead prometheus.Counter
	unread            prometheus.Gauge
	sidebarToggles    *prometheus.CounterVec
	navigations       prometheus.Counter

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Recorder with Go runtime and process collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		notificationsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_read_total",
			Help:      "Total number of notifications marked read.",
		}),
		unread: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notifications_unread",
			Help:      "Number of unread notifications.",
		}),
		sidebarToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sidebar_toggles_total",
			Help:      "Total number of sidebar toggles by resulting state.",
		}, []string{"state"}),
		navigations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Total number of navigation requests.",
		}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of response durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.notificationsRead,
		r.unread,
		r.sidebarToggles,
		r.navigations,
		r.requestCount,
		r.requestDuration,
	)
	return r
}

func (r *Recorder) NotificationRead(int) { r.notificationsRead.Inc() }

func (r *Recorder) UnreadChanged(count int) { r.unread.Set(float64(count)) }

func (r *Recorder) SidebarToggled(open bool) {
	state := "closed"
	if open {
		state = "open"
	}
	r.sidebarToggles.WithLabelValues(state).Inc()
}

func (r *Recorder) Navigated(string) { r.navigations.Inc() }

// ObserveRequest records one served HTTP request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (r *Recorder) ObserveRequest(path, method string, status int, elapsed time.Duration) {
	r.requestCount.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
