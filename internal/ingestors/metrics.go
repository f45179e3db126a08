package ingestors

import (
	"log-report/internal/shared/metrics"
)

var (
	metricSourcesOpenedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "sources_opened_total",
		},
	)

	// metricRecordsLoadedTotal counts decoded records kept for reporting, per source.
	metricRecordsLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_loaded_total",
		},
		[]string{"source"},
	)

	// metricRecordsFilteredTotal counts decoded records dropped by the date filter,
	// including the ones skipped for an unusable timestamp.
	metricRecordsFilteredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_filtered_total",
		},
		[]string{"source"},
	)
)
