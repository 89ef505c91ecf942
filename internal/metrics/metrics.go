package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Version = "1.0.0"

// Registry owns every collector the service exports.
type Registry struct {
	reg      *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	books    prometheus.Gauge
}

func New() *Registry {
	m := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		books: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "milibrary_books_total",
			Help: "Total number of books in library",
		}),
	}
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "milibrary_api_info",
		Help: "API information",
	}, []string{"version"})
	info.WithLabelValues(Version).Set(1)

	m.reg.MustRegister(
		m.requests,
		m.duration,
		m.books,
		info,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Registry) ObserveRequest(method, endpoint string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func (m *Registry) SetBooks(n int64) {
	m.books.Set(float64(n))
}

// Handler renders the registry in the text exposition format. Collection
// errors are skipped so a scrape never fails outright.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

func (m *Registry) Gatherer() prometheus.Gatherer { return m.reg }
