package aggregators

import (
	"fmt"
	"sort"

	"log-report/internal/models"
)

var averageReportHeaders = []string{"Endpoint", "Request Count", "Average Response Time"}

type averageReport struct{}

// NewAverageReport returns the handler computing the average response time per endpoint.
// Rows are sorted by request count, highest first; endpoints with the same count
// keep the order in which they were first seen.
func NewAverageReport() ReportHandler {
	return &averageReport{}
}

func (a *averageReport) Headers() []string {
	return append([]string(nil), averageReportHeaders...)
}

func (a *averageReport) Generate(records []models.LogRecord) ([]models.ReportRow, error) {
	endpoints := make([]string, 0)
	statsByEndpoint := make(map[string]*models.EndpointStats)

	for i, record := range records {
		endpoint, err := record.URL()
		if err != nil {
			return nil, errMissingField(i, err)
		}
		responseTime, err := record.ResponseTime()
		if err != nil {
			return nil, errMissingField(i, err)
		}

		stats, exists := statsByEndpoint[endpoint]
		if !exists {
			stats = &models.EndpointStats{}
			statsByEndpoint[endpoint] = stats
			endpoints = append(endpoints, endpoint)
		}
		stats.Add(responseTime)
	}

	rows := make([]models.ReportRow, 0, len(endpoints))
	for _, endpoint := range endpoints {
		stats := statsByEndpoint[endpoint]
		rows = append(rows, models.ReportRow{
			Endpoint:    endpoint,
			Count:       stats.Count,
			AverageTime: formatMillis(stats.Average()),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows, nil
}

func formatMillis(v float64) string {
	return fmt.Sprintf("%.2f ms", v)
}
