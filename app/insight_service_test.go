package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"queryinsights/domain/core"
	"queryinsights/domain/result"
	"queryinsights/internal/errors"
	engine "queryinsights/internal/insight"
	"queryinsights/internal/store"
	"queryinsights/ports"
)

type mockResultReader struct {
	mock.Mock
}

func (m *mockResultReader) ReadQuery(ctx context.Context, query string) (*result.Set, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.Set), args.Error(1)
}

func newTestService(reader ports.ResultReader) *InsightService {
	return NewInsightService(engine.NewEngine(engine.DefaultConfig()), store.NewMemoryReportStore(), reader)
}

func sampleSet() *result.Set {
	return &result.Set{
		Columns: []result.Column{{Name: "n", GenericType: result.TypeNumeric}},
		Rows: []result.Row{
			{"n": float64(1)},
			{"n": float64(2)},
			{"n": float64(3)},
		},
	}
}

func TestServiceComputeStoresReport(t *testing.T) {
	service := newTestService(nil)

	stored, err := service.Compute(context.Background(), sampleSet(), "test", 0)

	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "test", stored.Source)
	require.NotNil(t, stored.Report)
	assert.Equal(t, 3, stored.Report.RowCount)

	got, err := service.GetReport(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestServiceComputeInvalidSet(t *testing.T) {
	service := newTestService(nil)

	_, err := service.Compute(context.Background(), nil, "test", 0)
	assert.Error(t, err)
}

func TestServiceComputeBatchPreservesOrder(t *testing.T) {
	service := newTestService(nil)

	sets := []*result.Set{
		{
			Columns: []result.Column{{Name: "a", GenericType: result.TypeNumeric}},
			Rows:    []result.Row{{"a": float64(1)}},
		},
		{
			Columns: []result.Column{{Name: "b", GenericType: result.TypeString}},
			Rows:    []result.Row{{"b": "x"}, {"b": "y"}},
		},
	}

	stored, err := service.ComputeBatch(context.Background(), sets, "batch", 0)

	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].Report.RowCount)
	assert.Equal(t, 2, stored[1].Report.RowCount)
}

func TestServiceComputeBatchFailsFast(t *testing.T) {
	service := newTestService(nil)

	sets := []*result.Set{sampleSet(), nil}

	_, err := service.ComputeBatch(context.Background(), sets, "batch", 0)
	assert.Error(t, err)
}

func TestServiceComputeQueryWithoutReader(t *testing.T) {
	service := newTestService(nil)

	_, err := service.ComputeQuery(context.Background(), "SELECT 1", 0)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestServiceComputeQuery(t *testing.T) {
	reader := new(mockResultReader)
	reader.On("ReadQuery", mock.Anything, "SELECT n FROM t").Return(sampleSet(), nil)

	service := newTestService(reader)

	stored, err := service.ComputeQuery(context.Background(), "SELECT n FROM t", 0)

	require.NoError(t, err)
	assert.Equal(t, "query", stored.Source)
	assert.Equal(t, 3, stored.Report.RowCount)
	reader.AssertExpectations(t)
}

func TestServiceComputeQueryReaderError(t *testing.T) {
	reader := new(mockResultReader)
	reader.On("ReadQuery", mock.Anything, mock.Anything).Return(nil, errors.DatabaseError("boom"))

	service := newTestService(reader)

	_, err := service.ComputeQuery(context.Background(), "SELECT 1", 0)
	assert.Error(t, err)
}

func TestServiceListReports(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	first, err := service.Compute(ctx, sampleSet(), "a", 0)
	require.NoError(t, err)
	second, err := service.Compute(ctx, sampleSet(), "b", 0)
	require.NoError(t, err)

	reports, err := service.ListReports(ctx, 10)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, second.ID, reports[0].ID)
	assert.Equal(t, first.ID, reports[1].ID)
}

func TestServiceGetReportMissing(t *testing.T) {
	service := newTestService(nil)

	_, err := service.GetReport(context.Background(), core.NewReportID())
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestServiceTopNOverride(t *testing.T) {
	service := newTestService(nil)

	set := &result.Set{
		Columns: []result.Column{{Name: "n", GenericType: result.TypeNumeric}},
		Rows: []result.Row{
			{"n": float64(1)}, {"n": float64(1)}, {"n": float64(2)}, {"n": float64(3)},
		},
	}

	stored, err := service.Compute(context.Background(), set, "test", 3)

	require.NoError(t, err)
	assert.Len(t, stored.Report.Columns[0].TopFrequent, 3)
}
