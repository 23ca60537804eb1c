// Package admissions maps precomputed likelihood and trend categories to
// the gauge view model. No classification from raw numbers happens here —
// the categories arrive already decided upstream.
package admissions

import (
	"github.com/schoolscout/schoolscout-api/internal/format"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

// Gauge is the display mapping for one likelihood category. Band labels are
// illustrative fixed ranges, not derived from the underlying numbers.
type Gauge struct {
	Label        string `json:"label"`
	Band         string `json:"band"` // e.g. "75–100%"
	Colour       string `json:"colour"`
	WidthPercent int    `json:"width_percent"`
}

var gauges = map[school.Likelihood]Gauge{
	school.VeryLikely:   {Label: "Very likely", Band: "75–100%", Colour: "#2e7d32", WidthPercent: 90},
	school.Likely:       {Label: "Likely", Band: "50–75%", Colour: "#7cb342", WidthPercent: 65},
	school.Unlikely:     {Label: "Unlikely", Band: "25–50%", Colour: "#f9a825", WidthPercent: 40},
	school.VeryUnlikely: {Label: "Very unlikely", Band: "0–25%", Colour: "#c62828", WidthPercent: 15},
}

var unknownGauge = Gauge{Label: "Not available", Band: format.Placeholder, Colour: "#9e9e9e", WidthPercent: 0}

// GaugeFor returns the gauge for a category; unknown categories get the
// neutral placeholder gauge rather than an error.
func GaugeFor(l school.Likelihood) Gauge {
	if g, ok := gauges[l]; ok {
		return g
	}
	return unknownGauge
}

var trendLabels = map[school.Trend]string{
	school.TrendShrinking: "Catchment shrinking",
	school.TrendStable:    "Catchment stable",
	school.TrendGrowing:   "Catchment growing",
}

// TrendLabel renders the trend category; unknown renders the placeholder.
func TrendLabel(t school.Trend) string {
	if s, ok := trendLabels[t]; ok {
		return s
	}
	return format.Placeholder
}

// View is the full admissions panel view model for one school.
type View struct {
	Gauge               Gauge  `json:"gauge"`
	Trend               string `json:"trend"`
	LastDistanceOffered string `json:"last_distance_offered"`
	PlacesPerYear       *int   `json:"places_per_year,omitempty"`
}

// ViewFor builds the panel view model; a nil estimate yields the neutral
// gauge with placeholders so the panel never errors on missing data.
func ViewFor(est *school.AdmissionsEstimate) View {
	if est == nil {
		return View{Gauge: unknownGauge, Trend: format.Placeholder, LastDistanceOffered: format.Placeholder}
	}
	return View{
		Gauge:               GaugeFor(est.Likelihood),
		Trend:               TrendLabel(est.Trend),
		LastDistanceOffered: format.Distance(est.LastDistanceOffered),
		PlacesPerYear:       est.PlacesPerYear,
	}
}
