package cluster

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestCellSizeShrinksWithZoom(t *testing.T) {
	prev := CellSize(0)
	if prev != 90 {
		t.Fatalf("CellSize(0) = %v, want 90", prev)
	}
	for z := 1; z <= 18; z++ {
		s := CellSize(z)
		if s >= prev {
			t.Fatalf("CellSize(%d) = %v not smaller than CellSize(%d) = %v", z, s, z-1, prev)
		}
		if math.Abs(s*2-prev) > 1e-12 {
			t.Fatalf("CellSize(%d) = %v, want half of %v", z, s, prev)
		}
		prev = s
	}
}

// grid builds n points spread over a small area so clustering has work to do.
func grid(n int) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, Point{
			ID:  fmt.Sprintf("s%03d", i),
			Lat: 51.5 + float64(i%7)*0.01,
			Lng: -0.1 + float64(i/7)*0.01,
		})
	}
	return pts
}

func TestBelowThresholdSkipsClustering(t *testing.T) {
	pts := grid(Threshold)
	res := At(pts, 10)
	if len(res.Clusters) != 0 {
		t.Fatalf("got %d clusters below threshold, want 0", len(res.Clusters))
	}
	if len(res.Singles) != Threshold {
		t.Fatalf("got %d singles, want %d", len(res.Singles), Threshold)
	}
}

func TestClusteringDeterministic(t *testing.T) {
	pts := grid(80)
	a := At(pts, 8)
	b := At(pts, 8)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same inputs produced different groupings")
	}
	if len(a.Clusters) == 0 {
		t.Fatal("expected clusters above threshold at coarse zoom")
	}
}

func TestClusterCentroidIsMean(t *testing.T) {
	// Two tight pairs plus enough padding points far away to cross the
	// threshold without sharing cells with the pairs.
	pts := []Point{
		{ID: "a", Lat: 10.001, Lng: 20.001},
		{ID: "b", Lat: 10.003, Lng: 20.003},
	}
	for i := 0; i < Threshold; i++ {
		pts = append(pts, Point{ID: fmt.Sprintf("pad%02d", i), Lat: -40 + float64(i)*2, Lng: 60 + float64(i)*2})
	}
	res := At(pts, 12)
	var found *Cluster
	for i := range res.Clusters {
		if len(res.Clusters[i].IDs) == 2 && res.Clusters[i].IDs[0] == "a" {
			found = &res.Clusters[i]
		}
	}
	if found == nil {
		t.Fatal("pair a/b did not cluster")
	}
	if math.Abs(found.Lat-10.002) > 1e-9 || math.Abs(found.Lng-20.002) > 1e-9 {
		t.Fatalf("centroid = (%v,%v), want (10.002,20.002)", found.Lat, found.Lng)
	}
}

func TestFinerZoomNeverGrowsClusters(t *testing.T) {
	pts := grid(120)
	for z := 3; z < 14; z++ {
		coarse := At(pts, z)
		fine := At(pts, z+1)
		maxCoarse, maxFine := 0, 0
		for _, c := range coarse.Clusters {
			if c.Count > maxCoarse {
				maxCoarse = c.Count
			}
		}
		for _, c := range fine.Clusters {
			if c.Count > maxFine {
				maxFine = c.Count
			}
		}
		if maxFine > maxCoarse && maxCoarse > 0 {
			t.Fatalf("zoom %d max cluster %d exceeds zoom %d max %d", z+1, maxFine, z, maxCoarse)
		}
	}
}

func TestClusterTargetStepsZoom(t *testing.T) {
	c := Cluster{Lat: 51.5, Lng: -0.1, Count: 4}
	tgt := c.Target(9)
	if tgt.Zoom != 11 || tgt.Lat != 51.5 || tgt.Lng != -0.1 {
		t.Fatalf("unexpected target %+v", tgt)
	}
}

func TestEveryPointAccountedFor(t *testing.T) {
	pts := grid(75)
	res := At(pts, 9)
	seen := map[string]bool{}
	for _, p := range res.Singles {
		seen[p.ID] = true
	}
	for _, c := range res.Clusters {
		if c.Count != len(c.IDs) {
			t.Fatalf("cluster count %d != len(ids) %d", c.Count, len(c.IDs))
		}
		for _, id := range c.IDs {
			if seen[id] {
				t.Fatalf("point %s appears twice", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != len(pts) {
		t.Fatalf("accounted for %d points, want %d", len(seen), len(pts))
	}
}
