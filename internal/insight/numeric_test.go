package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.Equal(t, 1.75, percentile(sorted, 0.25))
	assert.Equal(t, 2.5, percentile(sorted, 0.50))
	assert.Equal(t, 3.25, percentile(sorted, 0.75))
	assert.Equal(t, 1.0, percentile(sorted, 0))
	assert.Equal(t, 4.0, percentile(sorted, 1))
}

func TestPercentileExactIndex(t *testing.T) {
	sorted := []float64{10, 20, 30}

	assert.Equal(t, 20.0, percentile(sorted, 0.50))
}

func TestPercentileSingleElement(t *testing.T) {
	assert.Equal(t, 7.0, percentile([]float64{7}, 0.25))
	assert.Equal(t, 7.0, percentile([]float64{7}, 0.75))
}

func TestComputeNumericPopulationStdDev(t *testing.T) {
	values := []any{float64(2), float64(4), float64(4), float64(4), float64(5), float64(5), float64(7), float64(9)}

	summary := computeNumeric(values, len(values))

	require.NotNil(t, summary)
	assert.Equal(t, 5.0, summary.Mean)
	assert.InDelta(t, 2.0, summary.StdDev, 1e-12)
}

func TestComputeNumericZeroPercentOverRowCount(t *testing.T) {
	// Two zeros out of four rows, even though one row is nil.
	values := []any{float64(0), float64(0), nil, float64(5)}

	summary := computeNumeric(values, 4)

	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.ZeroCount)
	assert.Equal(t, 50.0, summary.ZeroPercent)
}

func TestComputeNumericFiltersNonNumeric(t *testing.T) {
	values := []any{"abc", true, nil, "3.5", float64(1.5)}

	summary := computeNumeric(values, 5)

	require.NotNil(t, summary)
	assert.Equal(t, 1.5, summary.Min)
	assert.Equal(t, 3.5, summary.Max)
	assert.Equal(t, 2.5, summary.Mean)
}

func TestComputeNumericNoQualifyingValues(t *testing.T) {
	assert.Nil(t, computeNumeric([]any{"abc", nil, true}, 3))
	assert.Nil(t, computeNumeric(nil, 0))
}
