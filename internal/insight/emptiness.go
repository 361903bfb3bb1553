package insight

import (
	"strings"

	"queryinsights/domain/result"
)

// isEmpty classifies a raw value as empty. Null/missing counts as
// empty for every category; a whitespace-only string additionally
// counts as empty only when the column is declared string. Other
// categories never receive blank strings as legitimate empty markers.
func isEmpty(v any, genericType result.GenericType) bool {
	if v == nil {
		return true
	}
	if genericType == result.TypeString {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
