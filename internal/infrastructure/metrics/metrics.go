package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus metrics.
type Metrics struct {
	// Payment lifecycle metrics
	PaymentsCreated prometheus.Counter
	PaymentsUpdated prometheus.Counter
	PaymentsDeleted prometheus.Counter

	// Cached balance metrics. BalanceAdjustmentFailures counts the drift
	// introduced by best-effort adjustments that did not land.
	BalanceAdjustments        prometheus.Counter
	BalanceAdjustmentFailures prometheus.Counter

	// Cascade metrics
	CascadeDeletes *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_payments_created_total",
			Help: "Total number of payments created",
		}),
		PaymentsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_payments_updated_total",
			Help: "Total number of payments updated",
		}),
		PaymentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_payments_deleted_total",
			Help: "Total number of payments deleted",
		}),
		BalanceAdjustments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_balance_adjustments_total",
			Help: "Total number of bank balance adjustments applied",
		}),
		BalanceAdjustmentFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_balance_adjustment_failures_total",
			Help: "Total number of bank balance adjustments that failed after the payment row was persisted",
		}),
		CascadeDeletes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradebook_cascade_deletes_total",
				Help: "Total number of cascade deletes by parent entity",
			},
			[]string{"entity"},
		),
	}
}
