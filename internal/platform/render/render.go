// Package render formats a price summary for display.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"powerwidget/internal/feature/prices/domain/entity"
)

// chartWidth is the bar length, in cells, of the most expensive hour.
const chartWidth = 20

// Title renders the compact summary label, e.g. "0.16 - 0.42 @+3h" or
// "0.16 - 0.42 now". Without a cheapest window only the price range is shown.
func Title(s entity.Summary) string {
	rng := fmt.Sprintf("%s - %s", formatPrice(s.Min), formatPrice(s.Max))
	if s.Window == nil {
		return rng
	}
	if s.Window.HoursOffset == 0 {
		return rng + " now"
	}
	return fmt.Sprintf("%s @%+dh", rng, s.Window.HoursOffset)
}

// Chart renders the filtered series as one bar per hour. Hours inside the
// cheapest window are marked with '*'. Bars are scaled against the baseline,
// so with non-negative prices the zero line stays the anchor.
func Chart(s entity.Summary) string {
	var b strings.Builder
	span := s.Max - s.Baseline

	for i, sample := range s.Series {
		cells := chartWidth
		if span > 0 {
			cells = int(math.Round((sample.Price - s.Baseline) / span * chartWidth))
		}
		if cells < 1 {
			cells = 1
		}

		marker := " "
		if s.Window != nil && i >= s.Window.StartIndex && i < s.Window.StartIndex+s.Window.Length {
			marker = "*"
		}

		fmt.Fprintf(&b, "%s %s%s %s\n",
			sample.From.Format("15:04"),
			marker,
			strings.Repeat("█", cells),
			formatPrice(sample.Price),
		)
	}
	return b.String()
}

// formatPrice drops trailing zeros so "8.00" renders as "8" and "0.180" as "0.18".
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
