package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"log-report/internal/aggregators"
	"log-report/internal/ingestors"
	"log-report/internal/models"
	"log-report/internal/renderers"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/progress"
	"log-report/internal/shared/ulid"
)

// App holds all dependencies of one run and drives it.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	reportType models.ReportType
	loadOpts   ingestors.LoadOptions

	loader   ingestors.LogLoader
	reports  aggregators.ReportGenerator
	renderer renderers.Renderer
	gatherer metrics.Gatherer

	stdout io.Writer
	stderr io.Writer
}

// New creates and initializes a new App instance. The report type must be one
// of reports.Types(). Reports go to stdout; diagnostics, progress and metrics
// go to stderr.
func New(config *configs.Config, reports aggregators.ReportGenerator, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.LogLevel, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-report").
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()

	reportType, err := resolveReportType(config.Report, reports)
	if err != nil {
		return nil, err
	}

	loadOpts, err := newLoadOptions(config)
	if err != nil {
		return nil, err
	}

	fileStorage, err := filestorages.NewFileStorage("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	tracker := progress.NewNopTracker()
	if config.Progress {
		tracker = progress.NewBarTracker(stderr)
	}

	return &App{
		config:     config,
		appLogger:  appLogger,
		reportType: reportType,
		loadOpts:   loadOpts,
		loader:     ingestors.NewLogLoader(fileStorage, tracker),
		reports:    reports,
		renderer:   renderers.NewTableRenderer(),
		gatherer:   metrics.DefaultGatherer,
		stdout:     stdout,
		stderr:     stderr,
	}, nil
}

// Run loads the configured files, generates the report and prints it. When no
// record survives loading, the fixed "no entries" message is printed instead
// and no report is generated.
func (app *App) Run(ctx context.Context) error {
	started := time.Now()
	ctx = app.appLogger.WithContext(ctx)

	app.appLogger.Info().
		Msgf("Starting log-report (report=%s, files=%d, date=%q, on_invalid_timestamp=%s)",
			app.reportType, len(app.config.Files), app.config.Date, app.loadOpts.TimestampPolicy)

	records, err := app.loader.Load(ctx, app.config.Files, app.loadOpts)
	if err != nil {
		return fmt.Errorf("failed to load log records: %w", err)
	}

	if len(records) == 0 {
		app.appLogger.Info().Msg("no log records matched")
		if err := app.renderer.RenderEmpty(app.stdout); err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
		return app.finish(started)
	}

	report, err := app.reports.Generate(ctx, app.reportType, records)
	if err != nil {
		return fmt.Errorf("failed to generate %s report: %w", app.reportType, err)
	}

	if err := app.renderer.RenderReport(app.stdout, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return app.finish(started)
}

func (app *App) finish(started time.Time) error {
	app.appLogger.Info().Dur(loggers.FieldDuration, time.Since(started)).Msg("Run finished")

	if !app.config.Metrics {
		return nil
	}
	if err := metrics.Dump(app.stderr, app.gatherer); err != nil {
		return fmt.Errorf("failed to print metrics: %w", err)
	}
	return nil
}

func resolveReportType(name string, reports aggregators.ReportGenerator) (models.ReportType, error) {
	reportType, err := models.NewReportTypeFromString(name)
	if err != nil {
		return "", fmt.Errorf("invalid report type: %w", err)
	}
	if err := aggregators.CheckReportType(reports, reportType); err != nil {
		return "", err
	}
	return reportType, nil
}

func newLoadOptions(config *configs.Config) (ingestors.LoadOptions, error) {
	policy, err := ingestors.NewTimestampPolicyFromString(config.OnInvalidTimestamp)
	if err != nil {
		return ingestors.LoadOptions{}, err
	}

	opts := ingestors.LoadOptions{TimestampPolicy: policy}
	if config.Date != "" {
		date, err := models.ParseDate(config.Date)
		if err != nil {
			return ingestors.LoadOptions{}, err
		}
		opts.FilterDate = &date
	}
	return opts, nil
}
