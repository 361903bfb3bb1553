package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("INSIGHTS_TOP_FREQUENT", "")

	config, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "", config.Database.URL)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 1, config.Insights.TopFrequentCount)
	assert.Equal(t, 100000, config.Insights.MaxRows)
	assert.Equal(t, 30*time.Second, config.Insights.QueryTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("INSIGHTS_TOP_FREQUENT", "5")
	t.Setenv("INSIGHTS_QUERY_TIMEOUT", "10s")

	config, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 5, config.Insights.TopFrequentCount)
	assert.Equal(t, 10*time.Second, config.Insights.QueryTimeout)
}

func TestLoadRejectsInvalidTuning(t *testing.T) {
	t.Setenv("INSIGHTS_TOP_FREQUENT", "0")

	_, err := Load()
	assert.Error(t, err)
}
