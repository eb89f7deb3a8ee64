package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	WebhookEvents        *prometheus.CounterVec
	LedgerEntriesCreated *prometheus.CounterVec
	DuplicateEvents      prometheus.Counter
	ReversalsProcessed   *prometheus.CounterVec
	AttributionsRecorded *prometheus.CounterVec
	ReferralClicks       prometheus.Counter
	EntriesSwept         prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		WebhookEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Total number of webhook events processed",
			},
			[]string{"type", "status"}, // status: ok, error
		),
		LedgerEntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_created_total",
				Help: "Total number of commission ledger entries created",
			},
			[]string{"event_type"},
		),
		DuplicateEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_duplicate_events_total",
			Help: "Total number of duplicate event deliveries skipped by the idempotency guard",
		}),
		ReversalsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_reversals_total",
				Help: "Total number of refund/chargeback reversals processed",
			},
			[]string{"kind"}, // refund, chargeback
		),
		AttributionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attributions_recorded_total",
				Help: "Total number of signup attribution attempts by outcome",
			},
			[]string{"outcome"}, // recorded, no_referral, self_referral, already_attributed, storage_error
		),
		ReferralClicks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "referral_clicks_total",
			Help: "Total number of referral link clicks tracked",
		}),
		EntriesSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_entries_swept_total",
			Help: "Total number of pending entries made available by the sweep",
		}),
	}
}

// Middleware returns an Echo middleware that records HTTP metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
