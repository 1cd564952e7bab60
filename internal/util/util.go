// internal/util/util.go
package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration in the most readable unit, from
// nanoseconds up to minutes.
func FormatDuration(d time.Duration) string {
	s := d.Seconds()
	switch {
	case s >= 60:
		m := int(s) / 60
		return fmt.Sprintf("%dm %.2fs", m, s-float64(m)*60)
	case s >= 1:
		return fmt.Sprintf("%.2fs", s)
	case s >= 1e-3:
		return fmt.Sprintf("%.2fms", s*1e3)
	case s >= 1e-6:
		return fmt.Sprintf("%.2fµs", s*1e6)
	default:
		return fmt.Sprintf("%.2fns", s*1e9)
	}
}

// FormatSeconds renders a duration expressed in fractional seconds.
func FormatSeconds(sec float64) string {
	return FormatDuration(time.Duration(sec * float64(time.Second)))
}

// FormatCount formats an integer with comma separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(c)
	}
	return result.String()
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "…"
}
