package insight

import (
	"queryinsights/domain/insight"
)

// computeBoolean tallies boolean-like values: literal booleans and the
// numbers 0/1. Anything else, including the string "true", is excluded
// rather than coerced. Percentages are normalized against the
// boolean-like count. Returns nil when no value qualifies.
func computeBoolean(values []any) *insight.BooleanSummary {
	trueCount := 0
	falseCount := 0

	for _, v := range values {
		if b, ok := v.(bool); ok {
			if b {
				trueCount++
			} else {
				falseCount++
			}
			continue
		}
		if n, ok := numberValue(v); ok {
			switch n {
			case 1:
				trueCount++
			case 0:
				falseCount++
			}
		}
	}

	total := trueCount + falseCount
	if total == 0 {
		return nil
	}

	return &insight.BooleanSummary{
		TrueCount:    trueCount,
		FalseCount:   falseCount,
		TruePercent:  percentOf(trueCount, total),
		FalsePercent: percentOf(falseCount, total),
	}
}
