package ingestors

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"log-report/internal/models"
	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/progress"
)

// LoadOptions controls which decoded records are kept.
type LoadOptions struct {
	// FilterDate keeps only records whose @timestamp falls on this date. Nil keeps all.
	FilterDate      *models.Date
	TimestampPolicy TimestampPolicy
}

// LogLoader reads NDJSON log sources into memory.
//
// Sources are read one after the other, each opened, drained and closed before
// the next one. Records keep file-then-line order. Lines that are not a JSON
// object are dropped silently; every other failure aborts the load.
//
//go:generate mockgen -source=log_loader.go -destination=./mocks/log_loader_mock.go -package=mocks
type LogLoader interface {
	Load(ctx context.Context, sources []string, opts LoadOptions) ([]models.LogRecord, error)
}

type logLoader struct {
	fileStorage filestorages.FileStorage
	tracker     progress.Tracker
}

func NewLogLoader(fileStorage filestorages.FileStorage, tracker progress.Tracker) LogLoader {
	if tracker == nil {
		tracker = progress.NewNopTracker()
	}
	return &logLoader{
		fileStorage: fileStorage,
		tracker:     tracker,
	}
}

func (l *logLoader) Load(ctx context.Context, sources []string, opts LoadOptions) ([]models.LogRecord, error) {
	logger := loggers.Ctx(ctx)
	if opts.FilterDate != nil {
		logger.Debug().Msgf("loading %d source(s) filtered by date %s (timestamp policy: %s)", len(sources), opts.FilterDate, opts.TimestampPolicy)
	} else {
		logger.Debug().Msgf("loading %d source(s) without date filter", len(sources))
	}

	records := make([]models.LogRecord, 0)
	for _, source := range sources {
		var err error
		records, err = l.loadSource(ctx, source, opts, records)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug().Int(loggers.FieldRecords, len(records)).Msg("finished loading log sources")
	return records, nil
}

// loadSource appends the kept records of one source to records.
func (l *logLoader) loadSource(ctx context.Context, source string, opts LoadOptions, records []models.LogRecord) ([]models.LogRecord, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSource, source).Logger()

	rc, info, err := l.fileStorage.Open(ctx, source)
	if err != nil {
		return nil, errSourceUnavailable(source, err)
	}
	defer rc.Close()
	metricSourcesOpenedTotal.Inc()

	bar := l.tracker.Track(source, info.Size)
	defer func() { _ = bar.Finish() }()

	reader := bufio.NewReader(io.TeeReader(rc, bar))
	lineNo := 0
	kept := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++

			record, ok := decodeLine(line)
			if ok {
				keep, err := l.matchesFilter(record, opts)
				if err != nil {
					if opts.TimestampPolicy != TimestampPolicySkip {
						return nil, errInvalidTimestamp(source, lineNo, err)
					}
					logger.Debug().Int(loggers.FieldLine, lineNo).Err(err).Msg("skipping record without usable timestamp")
				}
				if keep {
					records = append(records, record)
					kept++
				} else {
					metricRecordsFilteredTotal.WithLabelValues(source).Inc()
				}
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, errInternalSourceReadFailed(source, readErr)
		}
	}

	metricRecordsLoadedTotal.WithLabelValues(source).Add(float64(kept))
	logger.Debug().Int(loggers.FieldLine, lineNo).Int(loggers.FieldRecords, kept).Msg("loaded log source")
	return records, nil
}

// matchesFilter reports whether record passes the date filter. A non-nil error
// means the record's timestamp is unusable; keep is false in that case.
func (l *logLoader) matchesFilter(record models.LogRecord, opts LoadOptions) (bool, error) {
	if opts.FilterDate == nil {
		return true, nil
	}
	date, err := recordDate(record)
	if err != nil {
		return false, err
	}
	return date == *opts.FilterDate, nil
}

// decodeLine decodes one line as a JSON object. Blank lines, malformed JSON
// and JSON values other than objects are rejected.
func decodeLine(line []byte) (models.LogRecord, bool) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var record models.LogRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, false
	}
	return record, true
}
