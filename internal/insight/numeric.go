package insight

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"queryinsights/domain/insight"
)

// computeNumeric produces the numeric summary over values that coerce
// to a finite number. Non-numeric values are filtered, not errors.
// Returns nil when no value qualifies. zeroPercent is normalized
// against rowCount, including empties.
func computeNumeric(values []any, rowCount int) *insight.NumericSummary {
	sample := make([]float64, 0, len(values))
	zeroCount := 0
	for _, v := range values {
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		sample = append(sample, f)
		if f == 0 {
			zeroCount++
		}
	}
	if len(sample) == 0 {
		return nil
	}

	mean, _ := stats.Mean(sample)
	stdDev, _ := stats.StandardDeviationPopulation(sample)
	min, _ := stats.Min(sample)
	max, _ := stats.Max(sample)

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	return &insight.NumericSummary{
		Min:         min,
		Max:         max,
		Mean:        mean,
		StdDev:      stdDev,
		P25:         percentile(sorted, 0.25),
		P50:         percentile(sorted, 0.50),
		P75:         percentile(sorted, 0.75),
		ZeroCount:   zeroCount,
		ZeroPercent: percentOf(zeroCount, rowCount),
	}
}

// percentile computes the p-quantile of an ascending-sorted sample by
// linear interpolation between adjacent order statistics at index
// p*(n-1). Library quantile conventions differ, so the formula is
// implemented directly.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := p * float64(len(sorted)-1)
	lo := math.Floor(idx)
	hi := math.Ceil(idx)
	if lo == hi {
		return sorted[int(idx)]
	}
	return sorted[int(lo)] + (idx-lo)*(sorted[int(hi)]-sorted[int(lo)])
}
