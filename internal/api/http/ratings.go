package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/schoolscout/schoolscout-api/internal/rating"
	"github.com/schoolscout/schoolscout-api/internal/school"
	syncx "github.com/schoolscout/schoolscout-api/internal/sync"
)

// SubmitParkingRatingHandler serves POST /api/parking-ratings. Validation
// failures stop here with a 400; nothing invalid reaches storage.
func SubmitParkingRatingHandler(ratings rating.Store, schools school.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub rating.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			errJSON(w, 400, "bad json")
			return
		}
		if err := sub.Validate(); err != nil {
			errJSON(w, 400, err.Error())
			return
		}
		if _, err := schools.GetSchool(r.Context(), sub.SchoolID); err != nil {
			if errors.Is(err, school.ErrNotFound) {
				errJSON(w, 404, "school not found")
				return
			}
			errJSON(w, 500, "lookup failed")
			return
		}

		id, err := ratings.Insert(r.Context(), sub)
		if err != nil {
			errJSON(w, 500, "could not save rating")
			return
		}
		if events != nil {
			data, _ := json.Marshal(sub)
			_ = events.Append(r.Context(), syncx.Event{
				Type: syncx.EventRatingSubmitted, Key: sub.SchoolID, DataJSON: string(data),
			})
		}
		writeJSON(w, map[string]string{"id": id})
	}
}

func GetParkingRatingsHandler(ratings rating.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "schoolID")
		agg, err := ratings.AggregateFor(r.Context(), id)
		if err != nil {
			errJSON(w, 500, "lookup failed")
			return
		}
		writeJSON(w, agg)
	}
}
