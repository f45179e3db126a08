package renderers

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"log-report/internal/models"
)

const NoEntriesMessage = "No log entries found matching the criteria."

//go:generate mockgen -source=table_renderer.go -destination=./mocks/table_renderer_mock.go -package=mocks
type Renderer interface {
	RenderReport(w io.Writer, report *models.Report) error
	RenderEmpty(w io.Writer) error
}

type tableRenderer struct{}

// NewTableRenderer returns a Renderer printing reports as a grid table with a
// separator line between every row.
func NewTableRenderer() Renderer {
	return &tableRenderer{}
}

func (r *tableRenderer) RenderReport(w io.Writer, report *models.Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, 0, len(report.Headers))
	for _, h := range report.Headers {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, row := range report.Rows {
		t.AppendRow(table.Row(row.Cells()))
	}

	t.SetStyle(table.StyleDefault)
	t.Style().Options.SeparateRows = true
	t.Style().Format.Header = text.FormatDefault
	t.Render()
	return nil
}

func (r *tableRenderer) RenderEmpty(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoEntriesMessage)
	return err
}
