package insight

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// toFloat coerces a raw value to a finite float64. String-encoded
// numbers are accepted; booleans, non-numeric strings and non-finite
// results are not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

// numberValue is the strict variant: only actual number types qualify,
// never strings or booleans. Used by the boolean calculator, which
// treats the numbers 0/1 as boolean-like but nothing else.
func numberValue(v any) (float64, bool) {
	switch v.(type) {
	case string, bool, nil:
		return 0, false
	}
	return toFloat(v)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// canonicalString produces the string form of a value used to group
// equal values for frequency and distinct counting. Floats use the
// shortest decimal form so 1.0 and 1 share a key.
func canonicalString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case time.Time:
		return formatISO(s)
	default:
		return fmt.Sprint(v)
	}
}

// displayValue keeps primitive values in their native form for report
// output and coerces anything else to its string form.
func displayValue(v any) any {
	switch v.(type) {
	case nil, bool, string, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	default:
		return canonicalString(v)
	}
}

// percentOf returns part as a percentage of total. Callers guarantee
// total > 0.
func percentOf(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
