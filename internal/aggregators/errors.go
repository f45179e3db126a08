package aggregators

import (
	"fmt"

	"log-report/internal/models"
	"log-report/internal/shared/svcerrors"
)

const (
	codeUnknownReportType      = "AGG_1000"
	codeMissingField           = "AGG_1001"
	codeDuplicateReportHandler = "AGG_1002"
)

// errUnknownReportType returns an error when no handler is registered for the requested type.
func errUnknownReportType(reportType models.ReportType) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownReportType, fmt.Sprintf("Unknown report type: %s", reportType), nil)
}

// errMissingField returns an error when a record lacks a field the report needs.
func errMissingField(index int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingField, fmt.Sprintf("record %d cannot be aggregated", index), cause)
}

// errDuplicateReportHandler returns an error when a report type is registered twice.
func errDuplicateReportHandler(reportType models.ReportType) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDuplicateReportHandler, fmt.Sprintf("report type already registered: %s", reportType), nil)
}
