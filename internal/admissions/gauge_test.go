package admissions

import (
	"testing"

	"github.com/schoolscout/schoolscout-api/internal/school"
)

func TestGaugeBandsDoNotOverlap(t *testing.T) {
	order := []school.Likelihood{
		school.VeryUnlikely, school.Unlikely, school.Likely, school.VeryLikely,
	}
	wantBands := []string{"0–25%", "25–50%", "50–75%", "75–100%"}
	prevWidth := -1
	for i, l := range order {
		g := GaugeFor(l)
		if g.Band != wantBands[i] {
			t.Errorf("%s band = %q, want %q", l, g.Band, wantBands[i])
		}
		if g.WidthPercent <= prevWidth {
			t.Errorf("%s width %d not increasing past %d", l, g.WidthPercent, prevWidth)
		}
		prevWidth = g.WidthPercent
	}
}

func TestUnknownLikelihoodGetsNeutralGauge(t *testing.T) {
	g := GaugeFor(school.LikelihoodUnknown)
	if g.WidthPercent != 0 || g.Label != "Not available" {
		t.Errorf("unexpected neutral gauge %+v", g)
	}
}

func TestViewForNilEstimate(t *testing.T) {
	v := ViewFor(nil)
	if v.Trend != "—" || v.LastDistanceOffered != "—" {
		t.Errorf("nil estimate should render placeholders, got %+v", v)
	}
}

func TestViewForEstimate(t *testing.T) {
	d := 1.4
	v := ViewFor(&school.AdmissionsEstimate{
		Likelihood:          school.Likely,
		Trend:               school.TrendShrinking,
		LastDistanceOffered: &d,
	})
	if v.Gauge.Label != "Likely" {
		t.Errorf("gauge label = %q", v.Gauge.Label)
	}
	if v.Trend != "Catchment shrinking" {
		t.Errorf("trend = %q", v.Trend)
	}
	if v.LastDistanceOffered != "1.4 miles" {
		t.Errorf("distance = %q", v.LastDistanceOffered)
	}
}
