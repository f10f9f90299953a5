package util

import (
	"fmt"
	"strings"
)

// FormatCount renders a counter the way the dashboard cards show it:
// 950 -> "950", 8400 -> "8.4K", 1200000 -> "1.2M". One decimal place,
// trailing ".0" trimmed.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
