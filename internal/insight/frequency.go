package insight

import (
	"sort"

	"queryinsights/domain/insight"
)

// emptyKey is the canonical-key sentinel for null/missing values in the
// frequency table.
const emptyKey = "__empty__"

type frequencyEntry struct {
	value any
	count int
}

// topFrequent builds the canonical-key frequency table over the full
// value sequence (empties included) and returns up to n entries sorted
// by descending count. Ties keep the order in which distinct keys were
// first inserted, so earlier-seen values win.
func topFrequent(values []any, n int) []insight.FrequentValue {
	counts := make(map[string]*frequencyEntry, len(values))
	order := make([]string, 0, len(values))

	for _, v := range values {
		key := emptyKey
		var original any
		if v != nil {
			key = canonicalString(v)
			original = displayValue(v)
		}
		entry, ok := counts[key]
		if !ok {
			entry = &frequencyEntry{value: original}
			counts[key] = entry
			order = append(order, key)
		}
		entry.count++
	}

	// Stable sort over insertion order preserves the tie-break rule.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]].count > counts[order[j]].count
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]insight.FrequentValue, 0, n)
	for _, key := range order[:n] {
		top = append(top, insight.FrequentValue{
			Value: counts[key].value,
			Count: counts[key].count,
		})
	}
	return top
}
