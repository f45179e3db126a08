package models

// EndpointStats accumulates the requests seen for one endpoint.
type EndpointStats struct {
	Count     int64
	TotalTime float64
}

// Add records one request that took responseTime milliseconds.
func (s *EndpointStats) Add(responseTime float64) {
	s.Count++
	s.TotalTime += responseTime
}

// Average returns TotalTime / Count. Count is at least 1 for any stats created
// through Add.
func (s *EndpointStats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalTime / float64(s.Count)
}

// ReportRow is one line of an endpoint report.
type ReportRow struct {
	Endpoint    string
	Count       int64
	AverageTime string
}

// Cells returns the row values in column order.
func (r ReportRow) Cells() []any {
	return []any{r.Endpoint, r.Count, r.AverageTime}
}

// Report is a generated report ready for rendering.
type Report struct {
	Type    ReportType
	Headers []string
	Rows    []ReportRow
}
