package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryinsights/domain/result"
)

func TestDistributionProfileSymmetricSample(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	set := &result.Set{
		Columns: []result.Column{numericColumn("n")},
		Rows:    rowsFor("n", float64(1), float64(2), float64(3), float64(4), float64(5), float64(6), float64(7)),
	}

	profile, err := engine.DistributionProfile(set, "n")

	require.NoError(t, err)
	assert.Equal(t, "n", profile.Column)
	assert.Equal(t, 7, profile.SampleSize)
	assert.InDelta(t, 0.0, profile.Skewness, 1e-9)
	assert.GreaterOrEqual(t, profile.NormalityP, 0.0)
	assert.LessOrEqual(t, profile.NormalityP, 1.0)
}

func TestDistributionProfileSkewedSample(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	set := &result.Set{
		Columns: []result.Column{numericColumn("n")},
		Rows:    rowsFor("n", float64(1), float64(1), float64(1), float64(1), float64(2), float64(3), float64(100)),
	}

	profile, err := engine.DistributionProfile(set, "n")

	require.NoError(t, err)
	assert.Greater(t, profile.Skewness, 1.0)
}

func TestDistributionProfileErrors(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	_, err := engine.DistributionProfile(nil, "n")
	assert.Error(t, err)

	set := &result.Set{
		Columns: []result.Column{numericColumn("n"), {Name: "s", GenericType: result.TypeString}},
		Rows:    rowsFor("n", float64(1), float64(2), float64(3)),
	}

	_, err = engine.DistributionProfile(set, "missing")
	assert.Error(t, err)

	_, err = engine.DistributionProfile(set, "s")
	assert.Error(t, err)

	tiny := &result.Set{
		Columns: []result.Column{numericColumn("n")},
		Rows:    rowsFor("n", float64(1), float64(2)),
	}
	_, err = engine.DistributionProfile(tiny, "n")
	assert.Error(t, err)
}
