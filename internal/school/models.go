package school

// OfstedRating is the inspection outcome as published; empty means unrated.
type OfstedRating string

const (
	OfstedOutstanding         OfstedRating = "Outstanding"
	OfstedGood                OfstedRating = "Good"
	OfstedRequiresImprovement OfstedRating = "Requires Improvement"
	OfstedInadequate          OfstedRating = "Inadequate"
	OfstedUnrated             OfstedRating = ""
)

// Rank orders ratings for comparison: Outstanding=4 down to Inadequate=1,
// unrated (or unknown text) = 0.
func (r OfstedRating) Rank() int {
	switch r {
	case OfstedOutstanding:
		return 4
	case OfstedGood:
		return 3
	case OfstedRequiresImprovement:
		return 2
	case OfstedInadequate:
		return 1
	default:
		return 0
	}
}

type Likelihood string

const (
	VeryLikely        Likelihood = "very_likely"
	Likely            Likelihood = "likely"
	Unlikely          Likelihood = "unlikely"
	VeryUnlikely      Likelihood = "very_unlikely"
	LikelihoodUnknown Likelihood = ""
)

type Trend string

const (
	TrendShrinking Trend = "shrinking"
	TrendStable    Trend = "stable"
	TrendGrowing   Trend = "growing"
	TrendUnknown   Trend = ""
)

// AdmissionsEstimate arrives precomputed upstream; the API classifies and
// displays it but never derives likelihood from the raw numbers.
type AdmissionsEstimate struct {
	Likelihood          Likelihood `json:"likelihood"`
	Trend               Trend      `json:"trend"`
	LastDistanceOffered *float64   `json:"last_distance_offered,omitempty"` // miles
	PlacesPerYear       *int       `json:"places_per_year,omitempty"`
}

type BusRoute struct {
	Number    string `json:"number"`
	Departs   string `json:"departs,omitempty"` // HH:MM:SS
	Operator  string   `json:"operator,omitempty"`
	FareDaily *float64 `json:"fare_daily,omitempty"`
}

// School is an immutable snapshot of one school's published metadata.
// Pointer fields are genuinely optional in the source data.
type School struct {
	ID         string       `json:"id"`
	URN        string       `json:"urn,omitempty"`
	Name       string       `json:"name"`
	SchoolType string       `json:"school_type,omitempty"` // academy, community, ...
	Faith      string       `json:"faith,omitempty"`
	Ethos      string       `json:"ethos,omitempty"`
	Website    string       `json:"website,omitempty"`
	Lat        *float64     `json:"lat,omitempty"`
	Lng        *float64     `json:"lng,omitempty"`
	Ofsted     OfstedRating `json:"ofsted_rating,omitempty"`

	DistanceMiles   *float64 `json:"distance_miles,omitempty"` // from reference point
	CatchmentMiles  *float64 `json:"catchment_miles,omitempty"`
	OpenTime        string   `json:"open_time,omitempty"` // HH:MM:SS
	UniformCost     *float64 `json:"uniform_cost,omitempty"`
	HolidayClub     bool     `json:"holiday_club"`
	HolidayClubMins *int     `json:"holiday_club_mins,omitempty"` // daily cover, minutes

	BusRoutes  []BusRoute          `json:"bus_routes,omitempty"`
	Admissions *AdmissionsEstimate `json:"admissions,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
}

// HasCoordinates reports whether the school can appear on the map at all.
func (s School) HasCoordinates() bool { return s.Lat != nil && s.Lng != nil }

type Summary struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	URN    string       `json:"urn,omitempty"`
	Ofsted OfstedRating `json:"ofsted_rating,omitempty"`
}
