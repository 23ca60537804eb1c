package school

import "github.com/schoolscout/schoolscout-api/internal/format"

// BusRouteView is one formatted bus line for the travel panel.
type BusRouteView struct {
	Number   string `json:"number"`
	Departs  string `json:"departs"`
	Operator string `json:"operator"`
	Fare     string `json:"fare"`
}

// CardView is the presentation-ready shape of a school card: every optional
// field resolved to a display string or an explicit placeholder, so the
// rendering layer branches on nothing.
type CardView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URN         string `json:"urn"`
	SchoolType  string `json:"school_type"`
	Faith       string `json:"faith"`
	Ethos       string `json:"ethos"`
	Website     string `json:"website,omitempty"`
	Ofsted      string `json:"ofsted_rating"`
	Distance    string `json:"distance"`
	Catchment   string `json:"catchment"`
	OpensAt     string `json:"opens_at"`
	UniformCost string `json:"uniform_cost"`
	HolidayClub string `json:"holiday_club"`

	HasLocation bool     `json:"has_location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`

	BusRoutes []BusRouteView `json:"bus_routes"`
}

// Card flattens a snapshot into its view model.
func Card(s School) CardView {
	v := CardView{
		ID:          s.ID,
		Name:        s.Name,
		URN:         format.OrPlaceholder(s.URN),
		SchoolType:  format.OrPlaceholder(s.SchoolType),
		Faith:       format.OrPlaceholder(s.Faith),
		Ethos:       format.OrPlaceholder(s.Ethos),
		Website:     s.Website,
		Ofsted:      format.OrPlaceholder(string(s.Ofsted)),
		Distance:    format.Distance(s.DistanceMiles),
		Catchment:   format.Distance(s.CatchmentMiles),
		OpensAt:     format.ClockTime(s.OpenTime),
		UniformCost: format.Currency(s.UniformCost),
		HolidayClub: HolidayClubLine(s),
		HasLocation: s.HasCoordinates(),
		Lat:         s.Lat,
		Lng:         s.Lng,
		BusRoutes:   make([]BusRouteView, 0, len(s.BusRoutes)),
	}
	for _, r := range s.BusRoutes {
		v.BusRoutes = append(v.BusRoutes, BusRouteView{
			Number:   r.Number,
			Departs:  format.ClockTime(r.Departs),
			Operator: format.OrPlaceholder(r.Operator),
			Fare:     format.Currency(r.FareDaily),
		})
	}
	return v
}

// HolidayClubLine renders the wraparound-care summary shared by the card
// and the comparison table.
func HolidayClubLine(s School) string {
	if !s.HolidayClub {
		return "No"
	}
	if s.HolidayClubMins == nil {
		return "Yes"
	}
	return "Yes, " + format.Duration(float64(*s.HolidayClubMins)) + "/day"
}
