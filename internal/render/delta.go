package render

import (
	"fmt"
	"math"
)

// ChangePercent computes the period-over-period percentage delta,
// rounded to one decimal. Zero-guarded: a zero previous value yields
// 100 when the current value is positive and 0 otherwise.
func ChangePercent(curr, prev float64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return math.Round((curr-prev)/prev*1000) / 10
}

// formatDelta renders a delta with its direction glyph, e.g. "↑ +20.0%"
func formatDelta(curr, prev float64) string {
	d := ChangePercent(curr, prev)
	switch {
	case d > 0:
		return fmt.Sprintf("↑ +%.1f%%", d)
	case d < 0:
		return fmt.Sprintf("↓ %.1f%%", d)
	default:
		return "0.0%"
	}
}
