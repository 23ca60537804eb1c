// Package cluster groups map markers into grid-cell clusters by zoom level.
// The grouping is a pure function of (points, zoom): no randomness, stable
// output ordering, so repeated calls at the same zoom agree exactly.
package cluster

import (
	"math"
	"sort"
)

// Threshold is the point count above which clustering kicks in. At or below
// it every point stays an individually clickable marker.
const Threshold = 30

// ClusterZoomStep is how far a cluster click zooms the viewport toward the
// centroid; the client recomputes markers at the new zoom.
const ClusterZoomStep = 2

type Point struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Cluster struct {
	Lat   float64  `json:"lat"` // arithmetic mean of members
	Lng   float64  `json:"lng"`
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

type Result struct {
	Singles  []Point   `json:"singles"`
	Clusters []Cluster `json:"clusters"`
}

// CellSize is the grid cell width in degrees at a zoom level. It halves for
// every zoom step, so finer grids at higher zoom.
func CellSize(zoom int) float64 {
	return 360 / math.Exp2(float64(zoom)+2)
}

type cellKey struct {
	x, y int
}

// At partitions points into singles and clusters for one zoom level.
// Callers must pre-filter points with missing coordinates; MarkersFor does
// that for school records.
func At(points []Point, zoom int) Result {
	if len(points) <= Threshold {
		singles := make([]Point, len(points))
		copy(singles, points)
		return Result{Singles: singles}
	}

	cell := CellSize(zoom)
	buckets := map[cellKey][]Point{}
	for _, p := range points {
		k := cellKey{
			x: int(math.Floor(p.Lng / cell)),
			y: int(math.Floor(p.Lat / cell)),
		}
		buckets[k] = append(buckets[k], p)
	}

	var res Result
	for _, members := range buckets {
		if len(members) == 1 {
			res.Singles = append(res.Singles, members[0])
			continue
		}
		var sumLat, sumLng float64
		ids := make([]string, 0, len(members))
		for _, p := range members {
			sumLat += p.Lat
			sumLng += p.Lng
			ids = append(ids, p.ID)
		}
		sort.Strings(ids)
		res.Clusters = append(res.Clusters, Cluster{
			Lat:   sumLat / float64(len(members)),
			Lng:   sumLng / float64(len(members)),
			Count: len(members),
			IDs:   ids,
		})
	}

	// Map iteration order is random; pin the output order.
	sort.Slice(res.Singles, func(i, j int) bool { return res.Singles[i].ID < res.Singles[j].ID })
	sort.Slice(res.Clusters, func(i, j int) bool {
		a, b := res.Clusters[i], res.Clusters[j]
		if a.IDs[0] != b.IDs[0] {
			return a.IDs[0] < b.IDs[0]
		}
		return a.Count > b.Count
	})
	return res
}

// ZoomTarget is the viewport hint attached to a cluster: clicking pans to
// the centroid and steps the zoom in, which breaks the cluster apart on the
// next recomputation rather than exploding it in place.
type ZoomTarget struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

func (c Cluster) Target(currentZoom int) ZoomTarget {
	return ZoomTarget{Lat: c.Lat, Lng: c.Lng, Zoom: currentZoom + ClusterZoomStep}
}
