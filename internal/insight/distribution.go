package insight

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"queryinsights/domain/insight"
	"queryinsights/domain/result"
	"queryinsights/internal/errors"
)

// DistributionProfile computes the extended numeric profile for one
// column: distribution shape plus a normality verdict. It sits outside
// the core report so the report contract stays fixed.
func (e *Engine) DistributionProfile(set *result.Set, column string) (*insight.DistributionProfile, error) {
	if set == nil {
		return nil, errors.InvalidInput("result set is required")
	}
	if err := set.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	var col *result.Column
	for i := range set.Columns {
		if set.Columns[i].Name == column {
			col = &set.Columns[i]
			break
		}
	}
	if col == nil {
		return nil, errors.NotFound("column " + column)
	}
	if col.GenericType != result.TypeNumeric {
		return nil, errors.InvalidInput("distribution profile requires a numeric column")
	}

	sample := make([]float64, 0, len(set.Rows))
	for _, v := range set.ColumnValues(column) {
		if f, ok := toFloat(v); ok {
			sample = append(sample, f)
		}
	}
	if len(sample) < 3 {
		return nil, errors.InvalidInput("distribution profile requires at least 3 numeric values")
	}

	mean, _ := stats.Mean(sample)
	stdDev, _ := stats.StandardDeviation(sample)

	skewness := calculateSkewness(sample, mean, stdDev)
	kurtosis := calculateKurtosis(sample, mean, stdDev)
	isNormal, pValue := testNormality(skewness, kurtosis, len(sample))

	return &insight.DistributionProfile{
		Column:     column,
		SampleSize: len(sample),
		Skewness:   skewness,
		Kurtosis:   kurtosis,
		IsNormal:   isNormal,
		NormalityP: pValue,
	}, nil
}

// calculateSkewness computes the adjusted Fisher-Pearson coefficient.
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// calculateKurtosis computes total (not excess) sample kurtosis with
// bias correction.
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3.0 // Normal kurtosis
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		kurtosis = kurtosis*correction + 6/(n+1)
	}
	return kurtosis + 3
}

// testNormality approximates a Jarque-Bera style test from skewness
// and excess kurtosis against a chi-squared distribution with 2
// degrees of freedom.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	excess := kurtosis - 3
	jb := float64(n) / 6 * (skewness*skewness + excess*excess/4)

	chi2 := distuv.ChiSquared{K: 2}
	pValue = 1 - chi2.CDF(jb)
	isNormal = pValue > 0.05
	return isNormal, pValue
}
