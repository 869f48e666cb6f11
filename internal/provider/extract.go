package provider

import (
	"math"
	"strconv"
	"strings"
)

// Int normalizes a raw CSV field to a nullable integer.
//
// Empty or whitespace-only input and non-numeric input return nil. Decimal
// text is truncated toward zero, so "7.0" and "7" both yield 7.
func Int(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	// float64 cannot hold MaxInt64; 1<<63 is the first value that overflows.
	f, ok := parseFinite(s)
	if !ok || f >= 1<<63 || f < -(1<<63) {
		return nil
	}
	n := int(math.Trunc(f))
	return &n
}

// Float normalizes a raw CSV field to a nullable float64. NaN and infinities
// are treated as non-numeric.
func Float(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, ok := parseFinite(s)
	if !ok {
		return nil
	}
	return &f
}

// String normalizes a raw CSV field to a nullable trimmed string.
func String(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

func parseFinite(s string) (float64, bool) {
	// ParseFloat accepts hex floats and underscores; upstream data never
	// contains either, and they are not "numeric text" for our purposes.
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
