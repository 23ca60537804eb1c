package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/schoolscout/schoolscout-api/internal/compare"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

// CompareHandler serves GET /compare?ids=1,2,3. The ids parameter is the
// whole selection state, so comparison links stay shareable; stale ids are
// skipped and only the resolved count is validated.
func CompareHandler(store school.Store) http.HandlerFunc {
	type response struct {
		Schools []school.Summary `json:"schools"`
		Rows    []compare.Row    `json:"rows"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("ids"))
		if raw == "" {
			errJSON(w, 400, "ids required")
			return
		}
		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > compare.MaxSchools {
			errJSON(w, 400, fmt.Sprintf("compare at most %d schools", compare.MaxSchools))
			return
		}

		schools, err := store.GetByIDs(r.Context(), ids)
		if err != nil {
			errJSON(w, 500, "lookup failed")
			return
		}
		if len(schools) < compare.MinSchools {
			errJSON(w, 400, fmt.Sprintf("need at least %d schools to compare", compare.MinSchools))
			return
		}

		headers := make([]school.Summary, len(schools))
		for i, s := range schools {
			headers[i] = school.Summary{ID: s.ID, Name: s.Name, URN: s.URN, Ofsted: s.Ofsted}
		}
		writeJSON(w, response{Schools: headers, Rows: compare.Table(schools)})
	}
}
