package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	FieldErrorCode  = "error_code"
	FieldReportType = "report_type"

	ValueNoError = ""

	Namespace    = "log_report"
	SubIngestion = "ingestion"
	SubReport    = "report"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// Gatherer is a type alias for prometheus.Gatherer.
type Gatherer = prometheus.Gatherer

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewCounter creates a new Counter registered with the default prometheus registry.
var NewCounter = promauto.NewCounter

// DefaultGatherer is the registry every counter of this module is registered with.
var DefaultGatherer Gatherer = prometheus.DefaultGatherer

// Dump writes every metric family of this module's namespace gathered from g
// to w in the Prometheus text exposition format. Runtime collectors registered
// by client_golang are left out.
func Dump(w io.Writer, g Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %q: %w", mf.GetName(), err)
		}
	}
	return nil
}
