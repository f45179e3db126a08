package models

import (
	"fmt"
	"strings"
)

type ReportType string

const (
	ReportAverage ReportType = "average"
)

func (t ReportType) String() string {
	return string(t)
}

// NewReportTypeFromString normalizes s into a ReportType. It does not check
// that a handler exists for the type; the report registry does that.
func NewReportTypeFromString(s string) (ReportType, error) {
	normalized := strings.TrimSpace(s)
	if normalized == "" {
		return "", fmt.Errorf("report type cannot be empty")
	}
	return ReportType(normalized), nil
}
