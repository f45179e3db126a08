package aggregators_test

import (
	"context"
	"errors"
	"testing"

	"log-report/internal/aggregators"
	aggregatormocks "log-report/internal/aggregators/mocks"
	"log-report/internal/models"
	"log-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportRegistry_Generate_Average(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()
	records := []models.LogRecord{
		{models.FieldURL: "/api/users", models.FieldResponseTime: 100.0},
		{models.FieldURL: "/api/users", models.FieldResponseTime: 200.0},
		{models.FieldURL: "/api/products", models.FieldResponseTime: 50.0},
	}

	report, err := registry.Generate(context.Background(), models.ReportAverage, records)
	require.NoError(t, err)

	assert.Equal(t, models.ReportAverage, report.Type)
	assert.Equal(t, []string{"Endpoint", "Request Count", "Average Response Time"}, report.Headers)
	assert.Equal(t, []models.ReportRow{
		{Endpoint: "/api/users", Count: 2, AverageTime: "150.00 ms"},
		{Endpoint: "/api/products", Count: 1, AverageTime: "50.00 ms"},
	}, report.Rows)
}

func TestReportRegistry_Generate_Idempotent(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()
	records := []models.LogRecord{
		{models.FieldURL: "/b", models.FieldResponseTime: 3.0},
		{models.FieldURL: "/a", models.FieldResponseTime: 1.0},
		{models.FieldURL: "/b", models.FieldResponseTime: 4.0},
		{models.FieldURL: "/c", models.FieldResponseTime: 9.0},
	}

	first, err := registry.Generate(context.Background(), models.ReportAverage, records)
	require.NoError(t, err)
	second, err := registry.Generate(context.Background(), models.ReportAverage, records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportRegistry_Generate_UnknownType(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()

	report, err := registry.Generate(context.Background(), models.ReportType("bogus"), nil)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "Unknown report type: bogus")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Equal(t, "Unknown report type: bogus", svcErr.Message)
}

func TestReportRegistry_Register_NewType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	handler := aggregatormocks.NewMockReportHandler(ctrl)

	records := []models.LogRecord{{models.FieldURL: "/x"}}
	rows := []models.ReportRow{{Endpoint: "/x", Count: 1, AverageTime: "n/a"}}

	handler.EXPECT().Generate(records).Return(rows, nil)
	handler.EXPECT().Headers().Return([]string{"Endpoint", "Count", "Note"})

	registry := aggregators.NewDefaultReportRegistry()
	require.NoError(t, registry.Register(models.ReportType("custom"), handler))

	assert.Equal(t, []models.ReportType{models.ReportAverage, "custom"}, registry.Types())

	report, err := registry.Generate(context.Background(), "custom", records)
	require.NoError(t, err)
	assert.Equal(t, rows, report.Rows)
	assert.Equal(t, []string{"Endpoint", "Count", "Note"}, report.Headers)
}

func TestReportRegistry_Register_Duplicate(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()

	err := registry.Register(models.ReportAverage, aggregators.NewAverageReport())

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1002", svcErr.Code)
	assert.Equal(t, []models.ReportType{models.ReportAverage}, registry.Types())
}

func TestReportRegistry_Generate_HandlerError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	handler := aggregatormocks.NewMockReportHandler(ctrl)
	handlerErr := errors.New("handler failed")
	handler.EXPECT().Generate(gomock.Any()).Return(nil, handlerErr)

	registry := aggregators.NewReportRegistry()
	require.NoError(t, registry.Register("failing", handler))

	report, err := registry.Generate(context.Background(), "failing", nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, handlerErr)
}

func TestReportRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()

	handler, err := registry.Lookup(models.ReportAverage)
	require.NoError(t, err)
	assert.NotNil(t, handler)

	_, err = registry.Lookup("nope")
	assert.ErrorContains(t, err, "nope")
}

func TestReportRegistry_Types_ReturnsCopy(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()
	types := registry.Types()
	types[0] = "mutated"

	assert.Equal(t, []models.ReportType{models.ReportAverage}, registry.Types())
}

func TestCheckReportType(t *testing.T) {
	t.Parallel()

	registry := aggregators.NewDefaultReportRegistry()

	assert.NoError(t, aggregators.CheckReportType(registry, models.ReportAverage))

	err := aggregators.CheckReportType(registry, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown report type: bogus")
}
