package ingestors

import (
	"fmt"
	"time"

	"log-report/internal/models"
)

// TimestampPolicy decides what happens to a record whose @timestamp cannot be
// read while a date filter is active.
type TimestampPolicy string

const (
	// TimestampPolicyFail aborts the whole load.
	TimestampPolicyFail TimestampPolicy = "fail"
	// TimestampPolicySkip drops the record and carries on.
	TimestampPolicySkip TimestampPolicy = "skip"
)

func NewTimestampPolicyFromString(s string) (TimestampPolicy, error) {
	switch p := TimestampPolicy(s); p {
	case TimestampPolicyFail, TimestampPolicySkip:
		return p, nil
	case "":
		return TimestampPolicyFail, nil
	default:
		return "", fmt.Errorf("invalid timestamp policy %q: must be %q or %q", s, TimestampPolicyFail, TimestampPolicySkip)
	}
}

// Fractional seconds are accepted after the seconds field by every layout
// that has one.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601 date or date-time. A space may stand in
// for the "T" separator. The zone offset, when present, is kept.
func parseTimestamp(s string) (time.Time, error) {
	value := s
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// recordDate returns the calendar date of the record's @timestamp, taken in
// the timestamp's own offset.
func recordDate(record models.LogRecord) (models.Date, error) {
	raw, err := record.Timestamp()
	if err != nil {
		return models.Date{}, err
	}
	t, err := parseTimestamp(raw)
	if err != nil {
		return models.Date{}, err
	}
	return models.DateOf(t), nil
}
