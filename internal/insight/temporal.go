package insight

import (
	"fmt"
	"time"

	"queryinsights/domain/insight"
)

const millisPerDay = 24 * 60 * 60 * 1000

// isoMillis renders timestamps as ISO-8601 with millisecond precision,
// e.g. 2024-01-01T00:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// temporalLayouts are tried in order when parsing date-time strings.
var temporalLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseTemporal coerces a raw value to a date-time: time.Time values
// pass through, numbers are epoch milliseconds, strings go through the
// layout list. Anything unparseable is excluded upstream.
func parseTemporal(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range temporalLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		if ms, ok := numberValue(v); ok {
			return time.UnixMilli(int64(ms)).UTC(), true
		}
		return time.Time{}, false
	}
}

// computeTemporal produces the temporal summary over values that parse
// to a valid date-time. Returns nil when no value parses.
func computeTemporal(values []any) *insight.TemporalSummary {
	var min, max time.Time
	count := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		t, ok := parseTemporal(v)
		if !ok {
			continue
		}
		if count == 0 || t.Before(min) {
			min = t
		}
		if count == 0 || t.After(max) {
			max = t
		}
		count++
	}
	if count == 0 {
		return nil
	}

	return &insight.TemporalSummary{
		Min:              formatISO(min),
		Max:              formatISO(max),
		RangeDescription: describeRange(min, max),
	}
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// describeRange buckets the span between min and max into a
// human-readable description: days below a month, whole 30-day months
// below a year, then years with remaining months.
func describeRange(min, max time.Time) string {
	days := int(max.Sub(min).Milliseconds() / millisPerDay)
	switch {
	case days == 0:
		return "same day"
	case days < 30:
		return pluralize(days, "day")
	case days < 365:
		return pluralize(days/30, "month")
	default:
		years := days / 365
		remainingMonths := (days % 365) / 30
		if remainingMonths == 0 {
			return pluralize(years, "year")
		}
		return fmt.Sprintf("%s, %s", pluralize(years, "year"), pluralize(remainingMonths, "month"))
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
