// Package compare builds the side-by-side comparison table for 2–4 schools
// and flags the best value per row.
package compare

import (
	"github.com/schoolscout/schoolscout-api/internal/format"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

const (
	MinSchools = 2
	MaxSchools = 4
)

// BestOfsted flags the schools holding the highest Ofsted rank. Unrated
// schools never win, and when every school is unrated nobody is flagged.
func BestOfsted(schools []school.School) []bool {
	best := make([]bool, len(schools))
	max := 0
	for _, s := range schools {
		if r := s.Ofsted.Rank(); r > max {
			max = r
		}
	}
	if max == 0 {
		return best
	}
	for i, s := range schools {
		best[i] = s.Ofsted.Rank() == max
	}
	return best
}

// BestDistance flags the schools with the minimum non-null distance. Ties
// flag every holder. Equality is exact: upstream distances are fixed-precision
// decimals, so near-equal-but-not-identical floats are treated as distinct.
func BestDistance(schools []school.School) []bool {
	best := make([]bool, len(schools))
	var min *float64
	for _, s := range schools {
		d := s.DistanceMiles
		if d == nil {
			continue
		}
		if min == nil || *d < *min {
			v := *d
			min = &v
		}
	}
	if min == nil {
		return best
	}
	for i, s := range schools {
		best[i] = s.DistanceMiles != nil && *s.DistanceMiles == *min
	}
	return best
}

// Row is one comparison table row: a label, per-school display cells, and
// best flags (nil for free-text rows, which have no "best").
type Row struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
	Best  []bool   `json:"best,omitempty"`
}

type rowSpec struct {
	label string
	cell  func(school.School) string
	best  func([]school.School) []bool // nil: not comparable
}

var rowSpecs = []rowSpec{
	{"Ofsted rating", func(s school.School) string {
		return format.OrPlaceholder(string(s.Ofsted))
	}, BestOfsted},
	{"Distance", func(s school.School) string {
		return format.Distance(s.DistanceMiles)
	}, BestDistance},
	{"School type", func(s school.School) string {
		return format.OrPlaceholder(s.SchoolType)
	}, nil},
	{"Faith", func(s school.School) string {
		return format.OrPlaceholder(s.Faith)
	}, nil},
	{"Ethos", func(s school.School) string {
		return format.OrPlaceholder(s.Ethos)
	}, nil},
	{"Catchment radius", func(s school.School) string {
		return format.Distance(s.CatchmentMiles)
	}, nil},
	{"Uniform cost", func(s school.School) string {
		return format.Currency(s.UniformCost)
	}, nil},
	{"School opens", func(s school.School) string {
		return format.ClockTime(s.OpenTime)
	}, nil},
	{"Holiday club", school.HolidayClubLine, nil},
}

// Table evaluates every row against the selected schools.
func Table(schools []school.School) []Row {
	rows := make([]Row, 0, len(rowSpecs))
	for _, spec := range rowSpecs {
		r := Row{Label: spec.label, Cells: make([]string, len(schools))}
		for i, s := range schools {
			r.Cells[i] = spec.cell(s)
		}
		if spec.best != nil {
			r.Best = spec.best(schools)
		}
		rows = append(rows, r)
	}
	return rows
}
