package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/schoolscout/schoolscout-api/internal/admissions"
	"github.com/schoolscout/schoolscout-api/internal/rating"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

func ListSchoolsHandler(store school.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		offset := parseIntDefault(r.URL.Query().Get("offset"), 0)

		list, err := store.ListSchools(r.Context(), school.ListOpts{Q: q, Limit: limit, Offset: offset})
		if err != nil {
			errJSON(w, 500, "search failed")
			return
		}
		if list == nil {
			list = []school.Summary{}
		}
		writeJSON(w, list)
	}
}

// GetSchoolHandler serves the full card: the flattened view model plus the
// admissions gauge and the parking-rating rollup.
func GetSchoolHandler(store school.Store, ratings rating.Store) http.HandlerFunc {
	type response struct {
		Card       school.CardView  `json:"card"`
		Admissions admissions.View  `json:"admissions"`
		Parking    rating.Aggregate `json:"parking"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "schoolID")
		s, err := store.GetSchool(r.Context(), id)
		if err != nil {
			if errors.Is(err, school.ErrNotFound) {
				errJSON(w, 404, "school not found")
				return
			}
			errJSON(w, 500, "lookup failed")
			return
		}
		agg, err := ratings.AggregateFor(r.Context(), id)
		if err != nil {
			// Ratings are an enrichment; the card still renders without them.
			agg = rating.Aggregate{SchoolID: id}
		}
		writeJSON(w, response{
			Card:       school.Card(s),
			Admissions: admissions.ViewFor(s.Admissions),
			Parking:    agg,
		})
	}
}
