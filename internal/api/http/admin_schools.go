package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	auth "github.com/schoolscout/schoolscout-api/internal/auth/middleware"
	"github.com/schoolscout/schoolscout-api/internal/school"
	syncx "github.com/schoolscout/schoolscout-api/internal/sync"
)

// BulkUpsertSchoolsHandler ingests a feed snapshot: a JSON array of school
// records, either as the request body or as a multipart file= upload.
func BulkUpsertSchoolsHandler(store school.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body io.Reader = r.Body
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			f, _, err := r.FormFile("file")
			if err != nil {
				errJSON(w, 400, "file required")
				return
			}
			defer f.Close()
			body = f
		}

		var rows []school.School
		if err := json.NewDecoder(body).Decode(&rows); err != nil {
			errJSON(w, 400, "expected a JSON array of schools")
			return
		}

		n := 0
		for _, s := range rows {
			if s.ID == "" || s.Name == "" {
				errJSON(w, 400, fmt.Sprintf("school %d: id and name required", n))
				return
			}
			if err := store.PutSchool(r.Context(), s); err != nil {
				errJSON(w, 500, "upsert failed: "+err.Error())
				return
			}
			n++
		}

		if events != nil {
			data, _ := json.Marshal(map[string]interface{}{
				"count": n, "by": auth.SubjectFromContext(r.Context()),
			})
			_ = events.Append(r.Context(), syncx.Event{
				Type: syncx.EventSchoolsLoaded, Key: "bulk", DataJSON: string(data),
			})
		}
		writeJSON(w, map[string]int{"upserted": n})
	}
}
