package aggregators

import (
	"context"

	"log-report/internal/models"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
)

// ReportHandler builds the rows of one report type.
type ReportHandler interface {
	Headers() []string
	Generate(records []models.LogRecord) ([]models.ReportRow, error)
}

// ReportGenerator dispatches a report request to the handler registered for its type.
//
//go:generate mockgen -source=report_registry.go -destination=./mocks/report_registry_mock.go -package=mocks
type ReportGenerator interface {
	Generate(ctx context.Context, reportType models.ReportType, records []models.LogRecord) (*models.Report, error)
	// Types lists the registered report types in registration order.
	Types() []models.ReportType
}

// ReportRegistry maps report types to handlers. New report types are added
// with Register; dispatch does not change.
type ReportRegistry struct {
	handlers map[models.ReportType]ReportHandler
	types    []models.ReportType
}

func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{handlers: make(map[models.ReportType]ReportHandler)}
}

// NewDefaultReportRegistry returns a registry holding the built-in report types.
func NewDefaultReportRegistry() *ReportRegistry {
	registry := NewReportRegistry()
	// cannot fail on an empty registry
	_ = registry.Register(models.ReportAverage, NewAverageReport())
	return registry
}

// Register adds handler under reportType. Registering a type twice is an error.
func (r *ReportRegistry) Register(reportType models.ReportType, handler ReportHandler) error {
	if _, exists := r.handlers[reportType]; exists {
		return errDuplicateReportHandler(reportType)
	}
	r.handlers[reportType] = handler
	r.types = append(r.types, reportType)
	return nil
}

// Lookup returns the handler registered for reportType.
func (r *ReportRegistry) Lookup(reportType models.ReportType) (ReportHandler, error) {
	handler, ok := r.handlers[reportType]
	if !ok {
		return nil, errUnknownReportType(reportType)
	}
	return handler, nil
}

func (r *ReportRegistry) Types() []models.ReportType {
	return append([]models.ReportType(nil), r.types...)
}

func (r *ReportRegistry) Generate(ctx context.Context, reportType models.ReportType, records []models.LogRecord) (*models.Report, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldReportType, reportType.String()).Int(loggers.FieldRecords, len(records)).Msg("started generating report")

	handler, err := r.Lookup(reportType)
	if err != nil {
		recordGenerated(reportType, err)
		return nil, err
	}

	rows, err := handler.Generate(records)
	if err != nil {
		recordGenerated(reportType, err)
		return nil, err
	}
	recordGenerated(reportType, nil)

	logger.Debug().Str(loggers.FieldReportType, reportType.String()).Int(loggers.FieldRows, len(rows)).Msg("finished generating report")
	return &models.Report{
		Type:    reportType,
		Headers: handler.Headers(),
		Rows:    rows,
	}, nil
}

// CheckReportType returns the unknown report type error when generator has no
// handler for reportType.
func CheckReportType(generator ReportGenerator, reportType models.ReportType) error {
	for _, registered := range generator.Types() {
		if registered == reportType {
			return nil
		}
	}
	return errUnknownReportType(reportType)
}

func recordGenerated(reportType models.ReportType, err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	} else if err != nil {
		code = svcerrors.NewInternalErrorUndefined(err).Code
	}
	metricReportGeneratedTotal.WithLabelValues(reportType.String(), code).Inc()
}
