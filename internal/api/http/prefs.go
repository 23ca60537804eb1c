package http

import (
	"encoding/json"
	"net/http"

	"github.com/schoolscout/schoolscout-api/internal/prefs"
	syncx "github.com/schoolscout/schoolscout-api/internal/sync"
)

func GetSENDPrefHandler(store *prefs.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.Get(r.Context(), prefs.KeyShowSENDInfo)
		if err != nil {
			errJSON(w, 500, "preference read failed")
			return
		}
		writeJSON(w, map[string]bool{"show_send_info": v})
	}
}

// PutSENDPrefHandler persists the toggle and fans the change out to every
// subscriber on this instance through the prefs store contract.
func PutSENDPrefHandler(store *prefs.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ShowSENDInfo *bool `json:"show_send_info"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ShowSENDInfo == nil {
			errJSON(w, 400, "show_send_info required")
			return
		}
		if err := store.Set(r.Context(), prefs.KeyShowSENDInfo, *req.ShowSENDInfo); err != nil {
			errJSON(w, 500, "preference write failed")
			return
		}
		if events != nil {
			data, _ := json.Marshal(map[string]bool{"value": *req.ShowSENDInfo})
			_ = events.Append(r.Context(), syncx.Event{
				Type: syncx.EventPreferenceChanged, Key: prefs.KeyShowSENDInfo, DataJSON: string(data),
			})
		}
		writeJSON(w, map[string]bool{"show_send_info": *req.ShowSENDInfo})
	}
}
