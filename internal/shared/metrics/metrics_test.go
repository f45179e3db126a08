package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_OnlyModuleNamespace(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	ours := prometheus.NewCounterVec(CounterOpts{
		Namespace: Namespace,
		Subsystem: SubIngestion,
		Name:      "records_loaded_total",
	}, []string{"source"})
	foreign := prometheus.NewCounter(CounterOpts{
		Name: "go_something_total",
	})
	registry.MustRegister(ours, foreign)

	ours.WithLabelValues("a.log").Add(3)
	foreign.Inc()

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, registry))

	out := buf.String()
	assert.Contains(t, out, `log_report_ingestion_records_loaded_total{source="a.log"} 3`)
	assert.NotContains(t, out, "go_something_total")
}

func TestDump_EmptyRegistry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, prometheus.NewRegistry()))
	assert.Empty(t, buf.String())
}
