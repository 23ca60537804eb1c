package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	api "github.com/schoolscout/schoolscout-api/internal/api/http"
	"github.com/schoolscout/schoolscout-api/internal/db"
	"github.com/schoolscout/schoolscout-api/internal/prefs"
	"github.com/schoolscout/schoolscout-api/internal/rating"
	"github.com/schoolscout/schoolscout-api/internal/school"
	syncx "github.com/schoolscout/schoolscout-api/internal/sync"
)

func newTestServer(t *testing.T) (*httptest.Server, school.Store, rating.Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })

	schools := school.NewSQLStore(dbh, "sqlite")
	ratings := rating.NewSQLStore(dbh)
	prefStore := prefs.NewStore(prefs.NewSQLBackend(dbh))
	events := syncx.NewEventRepo(dbh)

	r := chi.NewRouter()
	r.Get("/schools", api.ListSchoolsHandler(schools))
	r.Get("/schools/{schoolID}", api.GetSchoolHandler(schools, ratings))
	r.Get("/compare", api.CompareHandler(schools))
	r.Get("/map/markers", api.MapMarkersHandler(schools))
	r.Post("/api/parking-ratings", api.SubmitParkingRatingHandler(ratings, schools, events))
	r.Get("/api/parking-ratings/{schoolID}", api.GetParkingRatingsHandler(ratings))
	r.Get("/prefs/send-info", api.GetSENDPrefHandler(prefStore))
	r.Put("/prefs/send-info", api.PutSENDPrefHandler(prefStore, events))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, schools, ratings
}

func seedSchool(t *testing.T, store school.Store, s school.School) {
	t.Helper()
	if err := store.PutSchool(context.Background(), s); err != nil {
		t.Fatalf("seed school %s: %v", s.ID, err)
	}
}

func ptr(v float64) *float64 { return &v }

func TestSchoolCardAndSearch(t *testing.T) {
	srv, schools, _ := newTestServer(t)
	seedSchool(t, schools, school.School{
		ID: "s1", Name: "Hillcrest Primary", URN: "100001",
		Ofsted: school.OfstedGood, DistanceMiles: ptr(0.8), OpenTime: "08:45:00",
		Admissions: &school.AdmissionsEstimate{Likelihood: school.Likely, Trend: school.TrendStable},
	})
	seedSchool(t, schools, school.School{ID: "s2", Name: "St Mary's", URN: "100002"})

	resp, err := http.Get(srv.URL + "/schools?q=hill")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list []school.Summary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "s1" {
		t.Fatalf("search: got %+v", list)
	}

	resp, err = http.Get(srv.URL + "/schools/s1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var card struct {
		Card       school.CardView `json:"card"`
		Admissions struct {
			Gauge struct {
				Label string `json:"label"`
				Band  string `json:"band"`
			} `json:"gauge"`
			Trend string `json:"trend"`
		} `json:"admissions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		t.Fatal(err)
	}
	if card.Card.OpensAt != "08:45" || card.Card.Distance != "0.8 miles" {
		t.Errorf("card formatting: %+v", card.Card)
	}
	if card.Card.Faith != "—" {
		t.Errorf("missing faith should render placeholder, got %q", card.Card.Faith)
	}
	if card.Admissions.Gauge.Label != "Likely" || card.Admissions.Gauge.Band != "50–75%" {
		t.Errorf("admissions gauge: %+v", card.Admissions)
	}

	resp, err = http.Get(srv.URL + "/schools/unknown")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Errorf("unknown school: status %d, want 404", resp.StatusCode)
	}
}

func TestCompareFlagsBestValues(t *testing.T) {
	srv, schools, _ := newTestServer(t)
	seedSchool(t, schools, school.School{ID: "s1", Name: "A", Ofsted: school.OfstedGood, DistanceMiles: ptr(3.2)})
	seedSchool(t, schools, school.School{ID: "s2", Name: "B", Ofsted: school.OfstedOutstanding, DistanceMiles: ptr(1.5)})
	seedSchool(t, schools, school.School{ID: "s3", Name: "C", Ofsted: school.OfstedInadequate, DistanceMiles: ptr(1.5)})

	resp, err := http.Get(srv.URL + "/compare?ids=s1,s2,s3,stale")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body struct {
		Schools []school.Summary `json:"schools"`
		Rows    []struct {
			Label string   `json:"label"`
			Cells []string `json:"cells"`
			Best  []bool   `json:"best"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Schools) != 3 {
		t.Fatalf("stale id should be skipped, got %d schools", len(body.Schools))
	}
	for _, row := range body.Rows {
		switch row.Label {
		case "Ofsted rating":
			if !row.Best[1] || row.Best[0] || row.Best[2] {
				t.Errorf("ofsted best flags: %v", row.Best)
			}
		case "Distance":
			if row.Best[0] || !row.Best[1] || !row.Best[2] {
				t.Errorf("distance tie flags: %v", row.Best)
			}
		}
	}

	// A single resolvable id is not a comparison.
	resp, err = http.Get(srv.URL + "/compare?ids=s1")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("one school: status %d, want 400", resp.StatusCode)
	}
}

func TestMapMarkersExcludeUngeocoded(t *testing.T) {
	srv, schools, _ := newTestServer(t)
	seedSchool(t, schools, school.School{ID: "geo", Name: "Geo", Lat: ptr(51.5), Lng: ptr(-0.1)})
	seedSchool(t, schools, school.School{ID: "nogeo", Name: "NoGeo"})

	resp, err := http.Get(srv.URL + "/map/markers?zoom=12")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var body struct {
		Zoom    int `json:"zoom"`
		Singles []struct {
			ID string `json:"id"`
		} `json:"singles"`
		Clusters []json.RawMessage `json:"clusters"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Singles) != 1 || body.Singles[0].ID != "geo" {
		t.Fatalf("ungeocoded school leaked into markers: %+v", body.Singles)
	}
	if len(body.Clusters) != 0 {
		t.Fatalf("two points should not cluster below threshold")
	}
}

func TestParkingRatingValidationBlocksStorage(t *testing.T) {
	srv, schools, ratings := newTestServer(t)
	seedSchool(t, schools, school.School{ID: "s1", Name: "A"})

	// All five categories unset: rejected locally, nothing stored.
	resp, err := http.Post(srv.URL+"/api/parking-ratings", "application/json",
		strings.NewReader(`{"school_id":"s1"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("all-unset submission: status %d, want 400", resp.StatusCode)
	}
	agg, err := ratings.AggregateFor(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if agg.Count != 0 {
		t.Fatalf("invalid submission reached storage: %+v", agg)
	}

	// Valid submission lands and aggregates.
	resp, err = http.Post(srv.URL+"/api/parking-ratings", "application/json",
		strings.NewReader(`{"school_id":"s1","ease":4,"safety":2}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("valid submission: status %d", resp.StatusCode)
	}
	agg, err = ratings.AggregateFor(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if agg.Count != 1 || agg.Ease != 4 || agg.Safety != 2 {
		t.Fatalf("aggregate: %+v", agg)
	}

	// Unknown school 404s.
	resp, err = http.Post(srv.URL+"/api/parking-ratings", "application/json",
		strings.NewReader(`{"school_id":"ghost","ease":3}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Fatalf("unknown school: status %d, want 404", resp.StatusCode)
	}
}

func TestSENDPrefRoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/prefs/send-info")
	if err != nil {
		t.Fatal(err)
	}
	var flag map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&flag); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if flag["show_send_info"] {
		t.Fatal("flag should default to false")
	}

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/prefs/send-info",
		strings.NewReader(`{"show_send_info":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("put flag: status %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/prefs/send-info")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&flag); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if !flag["show_send_info"] {
		t.Fatal("flag should persist true")
	}
}
