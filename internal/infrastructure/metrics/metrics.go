package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/nexusbank/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Banking metrics
	UsersCreated      prometheus.Counter
	AccountsCreated   *prometheus.CounterVec
	Transactions      *prometheus.CounterVec
	TransactionAmount *prometheus.HistogramVec
	TransactionErrors *prometheus.CounterVec

	// API metrics
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	HTTPInFlight   prometheus.Gauge
	RateLimitHits  prometheus.Counter
	IdempotentHits prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "nexusbank_users_created_total",
			Help: "Total number of users created",
		}),
		AccountsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexusbank_accounts_created_total",
				Help: "Total number of accounts created by currency",
			},
			[]string{"currency"},
		),
		Transactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexusbank_transactions_total",
				Help: "Total number of completed transactions by type",
			},
			[]string{"type"},
		),
		TransactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nexusbank_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type", "currency"},
		),
		TransactionErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexusbank_transaction_errors_total",
				Help: "Total number of failed transactions by type and error kind",
			},
			[]string{"type", "kind"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexusbank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nexusbank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nexusbank_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "nexusbank_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
		IdempotentHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "nexusbank_idempotent_replays_total",
			Help: "Total responses replayed from the idempotency store",
		}),
	}
}

// RecordUserCreated implements usecase.MetricsRecorder.
func (m *Metrics) RecordUserCreated() {
	m.UsersCreated.Inc()
}

// RecordAccountCreated implements usecase.MetricsRecorder.
func (m *Metrics) RecordAccountCreated(currency string) {
	m.AccountsCreated.WithLabelValues(currency).Inc()
}

// RecordTransaction implements usecase.MetricsRecorder.
func (m *Metrics) RecordTransaction(txType domain.TransactionType, amount domain.Money) {
	m.Transactions.WithLabelValues(string(txType)).Inc()
	m.TransactionAmount.WithLabelValues(string(txType), amount.Currency()).Observe(amount.Amount().InexactFloat64())
}

// RecordTransactionFailure implements usecase.MetricsRecorder.
func (m *Metrics) RecordTransactionFailure(txType domain.TransactionType, kind domain.ErrorKind) {
	m.TransactionErrors.WithLabelValues(string(txType), string(kind)).Inc()
}
