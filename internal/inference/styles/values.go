package styles

import (
	"strconv"
	"strings"
)

// numericPx parses a CSS-ish length value ("16px", "16", 16, 16.0) into a
// pixel count. Values the analyzers cannot narrow are dropped rather than
// guessed at.
func numericPx(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		return parsePx(t)
	default:
		return 0, false
	}
}

func parsePx(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// pxTokens splits a CSS shorthand like "8px 16px" into its numeric tokens
func pxTokens(s string) []float64 {
	var out []float64
	for _, tok := range strings.Fields(s) {
		if f, ok := parsePx(tok); ok {
			out = append(out, f)
		}
	}
	return out
}

// stringValue narrows an open map value to a non-empty string
func stringValue(m map[string]interface{}, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func formatPx(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10) + "px"
	}
	return strconv.FormatFloat(f, 'g', -1, 64) + "px"
}
