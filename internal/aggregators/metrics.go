package aggregators

import (
	"log-report/internal/shared/metrics"
)

// metricReportGeneratedTotal counts report generations by report type and outcome.
// error_code is empty for successful generations.
var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "generated_total",
		},
		[]string{metrics.FieldReportType, metrics.FieldErrorCode},
	)
)
