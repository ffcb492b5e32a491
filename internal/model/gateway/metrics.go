package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramPersistTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expense_tracker",
		Subsystem: "gateway",
		Name:      "histogram_snapshot_persist_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	},
	[]string{"failed"},
)

var counterAuditFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "expense_tracker",
		Subsystem: "gateway",
		Name:      "audit_log_failures_total",
	},
)

func observePersist(elapsed time.Duration, failed bool) {
	histogramPersistTime.
		WithLabelValues(strconv.FormatBool(failed)).
		Observe(elapsed.Seconds())
}

func observeAuditFailure() {
	counterAuditFailures.Inc()
}
