// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains the Prometheus instrumentation shared by all operations.
package bigint

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels used by the metrics below.
const (
	opParse           = "from_string"
	opSum             = "sum"
	opProduct         = "product"
	opProductParallel = "product_parallel"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biguint_operations_total",
			Help: "The total number of big integer operations processed",
		},
		[]string{"operation", "status"},
	)
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "biguint_operation_duration_seconds",
			Help: "The duration of big integer operations in seconds",
		},
		[]string{"operation"},
	)
)

// observe records one completed operation. Every exported operation calls it
// exactly once on every return path; the internal helpers (add, mul,
// atomicProduct) are deliberately unobserved so that composite operations
// are counted once, not once per inner addition.
func observe(op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	operationsTotal.WithLabelValues(op, status).Inc()
	operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
