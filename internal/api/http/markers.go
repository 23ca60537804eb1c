package http

import (
	"net/http"

	"github.com/schoolscout/schoolscout-api/internal/cluster"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

type clusterOut struct {
	cluster.Cluster
	Target cluster.ZoomTarget `json:"target"`
}

// MapMarkersHandler serves GET /map/markers?zoom=N: every geocoded school,
// grouped for the requested zoom. Schools without coordinates are excluded
// upstream by ListGeocoded and never reach the map at all.
func MapMarkersHandler(store school.Store) http.HandlerFunc {
	type response struct {
		Zoom     int             `json:"zoom"`
		Singles  []cluster.Point `json:"singles"`
		Clusters []clusterOut    `json:"clusters"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		zoom := parseIntDefault(r.URL.Query().Get("zoom"), 10)
		if zoom > 20 {
			zoom = 20
		}

		schools, err := store.ListGeocoded(r.Context())
		if err != nil {
			errJSON(w, 500, "map lookup failed")
			return
		}
		points := make([]cluster.Point, 0, len(schools))
		for _, s := range schools {
			points = append(points, cluster.Point{ID: s.ID, Lat: *s.Lat, Lng: *s.Lng})
		}

		res := cluster.At(points, zoom)
		out := response{Zoom: zoom, Singles: res.Singles, Clusters: make([]clusterOut, 0, len(res.Clusters))}
		if out.Singles == nil {
			out.Singles = []cluster.Point{}
		}
		for _, c := range res.Clusters {
			out.Clusters = append(out.Clusters, clusterOut{Cluster: c, Target: c.Target(zoom)})
		}
		writeJSON(w, out)
	}
}
