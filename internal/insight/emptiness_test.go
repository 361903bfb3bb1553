package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"queryinsights/domain/result"
)

func TestIsEmptyNilForAllTypes(t *testing.T) {
	for _, gt := range []result.GenericType{result.TypeNumeric, result.TypeString, result.TypeTemporal, result.TypeBoolean} {
		assert.True(t, isEmpty(nil, gt), "nil should be empty for %s", gt)
	}
}

func TestIsEmptyWhitespaceStringColumnsOnly(t *testing.T) {
	assert.True(t, isEmpty("", result.TypeString))
	assert.True(t, isEmpty("   ", result.TypeString))
	assert.True(t, isEmpty("\t\n", result.TypeString))

	assert.False(t, isEmpty("", result.TypeNumeric))
	assert.False(t, isEmpty("   ", result.TypeTemporal))
	assert.False(t, isEmpty("", result.TypeBoolean))
}

func TestIsEmptyRegularValues(t *testing.T) {
	assert.False(t, isEmpty("a", result.TypeString))
	assert.False(t, isEmpty(float64(0), result.TypeNumeric))
	assert.False(t, isEmpty(false, result.TypeBoolean))
}
