package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldSource     = "source"
	FieldLine       = "line"
	FieldReportType = "report_type"
	FieldRecords    = "records"
	FieldRows       = "rows"

	FieldDuration  = "duration"
	FieldErrorCode = "error_code"
)
