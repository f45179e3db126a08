package renderers

import (
	"bytes"
	"strings"
	"testing"

	"log-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var averageHeaders = []string{"Endpoint", "Request Count", "Average Response Time"}

func TestTableRenderer_RenderReport(t *testing.T) {
	t.Parallel()

	report := &models.Report{
		Type:    models.ReportAverage,
		Headers: averageHeaders,
		Rows: []models.ReportRow{
			{Endpoint: "/api/users", Count: 2, AverageTime: "150.00 ms"},
			{Endpoint: "/api/products", Count: 1, AverageTime: "50.00 ms"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().RenderReport(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "Endpoint")
	assert.Contains(t, out, "Request Count")
	assert.Contains(t, out, "Average Response Time")
	assert.NotContains(t, out, "REQUEST COUNT", "headers must be printed as given")
	assert.Contains(t, out, "150.00 ms")
	assert.Contains(t, out, "50.00 ms")

	users := strings.Index(out, "/api/users")
	products := strings.Index(out, "/api/products")
	require.NotEqual(t, -1, users)
	require.NotEqual(t, -1, products)
	assert.Less(t, users, products, "rows must keep report order")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	separators := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "+") {
			separators++
			continue
		}
		assert.True(t, strings.HasPrefix(line, "|"), "unexpected line %q", line)
	}
	// top, below header, between the two rows, bottom
	assert.Equal(t, 4, separators)
	assert.Len(t, lines, 7)
}

func TestTableRenderer_RenderReport_NoRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewTableRenderer().RenderReport(&buf, &models.Report{Headers: averageHeaders})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Average Response Time")
}

func TestTableRenderer_RenderEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().RenderEmpty(&buf))
	assert.Equal(t, "No log entries found matching the criteria.\n", buf.String())
}
