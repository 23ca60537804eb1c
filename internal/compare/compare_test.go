package compare

import (
	"reflect"
	"testing"

	"github.com/schoolscout/schoolscout-api/internal/school"
)

func rated(r school.OfstedRating) school.School {
	return school.School{Ofsted: r}
}

func atDistance(d float64) school.School {
	return school.School{DistanceMiles: &d}
}

func TestBestOfsted(t *testing.T) {
	got := BestOfsted([]school.School{
		rated(school.OfstedGood),
		rated(school.OfstedOutstanding),
		rated(school.OfstedInadequate),
	})
	if !reflect.DeepEqual(got, []bool{false, true, false}) {
		t.Errorf("mixed ratings: got %v", got)
	}

	got = BestOfsted([]school.School{rated(school.OfstedGood), rated(school.OfstedGood)})
	if !reflect.DeepEqual(got, []bool{true, true}) {
		t.Errorf("tied ratings: got %v", got)
	}

	got = BestOfsted([]school.School{rated(school.OfstedUnrated), rated(school.OfstedUnrated)})
	if !reflect.DeepEqual(got, []bool{false, false}) {
		t.Errorf("all unrated: got %v", got)
	}
}

func TestBestDistance(t *testing.T) {
	got := BestDistance([]school.School{
		atDistance(3.2),
		atDistance(1.5),
		atDistance(1.5),
		{}, // no distance
	})
	if !reflect.DeepEqual(got, []bool{false, true, true, false}) {
		t.Errorf("got %v", got)
	}

	got = BestDistance([]school.School{{}, {}})
	if !reflect.DeepEqual(got, []bool{false, false}) {
		t.Errorf("all nil distances: got %v", got)
	}
}

func TestTableRows(t *testing.T) {
	d1, d2 := 0.8, 2.1
	cost := 45.0
	mins := 120
	a := school.School{
		Name: "Hillcrest Primary", Ofsted: school.OfstedGood, DistanceMiles: &d1,
		SchoolType: "Academy", OpenTime: "08:45:00",
		UniformCost: &cost, HolidayClub: true, HolidayClubMins: &mins,
	}
	b := school.School{Name: "St Mary's", Ofsted: school.OfstedOutstanding, DistanceMiles: &d2, Faith: "Church of England"}

	rows := Table([]school.School{a, b})

	byLabel := map[string]Row{}
	for _, r := range rows {
		byLabel[r.Label] = r
	}

	if r := byLabel["Ofsted rating"]; !reflect.DeepEqual(r.Best, []bool{false, true}) {
		t.Errorf("ofsted best: %v", r.Best)
	}
	if r := byLabel["Distance"]; !reflect.DeepEqual(r.Best, []bool{true, false}) {
		t.Errorf("distance best: %v", r.Best)
	}
	if r := byLabel["Faith"]; r.Best != nil {
		t.Errorf("free-text row should carry no best flags, got %v", r.Best)
	}
	if r := byLabel["Faith"]; r.Cells[0] != "—" || r.Cells[1] != "Church of England" {
		t.Errorf("faith cells: %v", r.Cells)
	}
	if r := byLabel["School opens"]; r.Cells[0] != "08:45" || r.Cells[1] != "—" {
		t.Errorf("open time cells: %v", r.Cells)
	}
	if r := byLabel["Holiday club"]; r.Cells[0] != "Yes, 2h/day" || r.Cells[1] != "No" {
		t.Errorf("holiday club cells: %v", r.Cells)
	}
	if r := byLabel["Uniform cost"]; r.Cells[0] != "£45.00" {
		t.Errorf("uniform cost cell: %v", r.Cells)
	}
}
