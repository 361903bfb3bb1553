package insight

import (
	"strings"
	"unicode/utf8"

	"queryinsights/domain/insight"
)

// computeString produces length statistics over values that are
// strings and non-blank after trimming, consistent with the emptiness
// policy. Lengths are character counts of the original, untrimmed
// string. Returns nil when no string qualifies.
func computeString(values []any) *insight.StringSummary {
	minLength := 0
	maxLength := 0
	totalLength := 0
	count := 0

	for _, v := range values {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		length := utf8.RuneCountInString(s)
		if count == 0 || length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
		totalLength += length
		count++
	}
	if count == 0 {
		return nil
	}

	return &insight.StringSummary{
		MinLength: minLength,
		MaxLength: maxLength,
		AvgLength: float64(totalLength) / float64(count),
	}
}
