package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records account lifecycle metrics
type PrometheusMetrics struct {
	accountsCreated   *prometheus.CounterVec
	accountsDeleted   prometheus.Counter
	statusEvaluations *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates and registers the account metrics
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		accountsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_accounts_created_total",
				Help: "Total number of accounts created",
			},
			[]string{"account_type"},
		),
		accountsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_accounts_deleted_total",
				Help: "Total number of accounts deleted",
			},
		),
		statusEvaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_account_status_evaluations_total",
				Help: "Total number of account status evaluations by result",
			},
			[]string{"status"},
		),
		operationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_account_operation_duration_milliseconds",
				Help:    "Account operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordAccountCreated(accountType string) {
	m.accountsCreated.WithLabelValues(accountType).Inc()
}

func (m *PrometheusMetrics) RecordAccountDeleted() {
	m.accountsDeleted.Inc()
}

func (m *PrometheusMetrics) RecordStatusEvaluation(status string) {
	m.statusEvaluations.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

// NoopMetrics is a MetricsRecorderInterface that records nothing. Tests use
// it to avoid duplicate prometheus registrations.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordAccountCreated(accountType string)                   {}
func (m *NoopMetrics) RecordAccountDeleted()                                     {}
func (m *NoopMetrics) RecordStatusEvaluation(status string)                      {}
func (m *NoopMetrics) RecordOperationDuration(operation string, d time.Duration) {}
