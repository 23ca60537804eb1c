// Package format holds the display-string helpers shared by the card and
// comparison view models. Every helper renders missing input as an explicit
// placeholder rather than an empty string.
package format

import (
	"fmt"
	"strings"
)

// Placeholder stands in for any value the source data does not supply.
const Placeholder = "—"

// ClockTime truncates an HH:MM:SS string to HH:MM. Anything shorter than
// five characters (including empty) renders as the placeholder.
func ClockTime(hms string) string {
	if len(hms) < 5 {
		return Placeholder
	}
	return hms[:5]
}

// Currency renders a GBP amount with two decimals; nil renders the placeholder.
func Currency(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	return fmt.Sprintf("£%.2f", *amount)
}

// Duration renders a minute count for humans:
// under 1 → "<1 min", under 60 → "N min", otherwise hours with the minutes
// component omitted when it is exactly zero ("2h", "1h 30m").
func Duration(minutes float64) string {
	if minutes < 1 {
		return "<1 min"
	}
	whole := int(minutes)
	if whole < 60 {
		return fmt.Sprintf("%d min", whole)
	}
	h, m := whole/60, whole%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Distance renders miles to one decimal; nil renders the placeholder.
func Distance(miles *float64) string {
	if miles == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f miles", *miles)
}

// OrPlaceholder returns s unless it is blank.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
