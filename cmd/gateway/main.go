package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	api "github.com/schoolscout/schoolscout-api/internal/api/http"
	auth "github.com/schoolscout/schoolscout-api/internal/auth/middleware"
	"github.com/schoolscout/schoolscout-api/internal/config"
	"github.com/schoolscout/schoolscout-api/internal/db"
	"github.com/schoolscout/schoolscout-api/internal/prefs"
	"github.com/schoolscout/schoolscout-api/internal/rating"
	rbac "github.com/schoolscout/schoolscout-api/internal/rbac"
	"github.com/schoolscout/schoolscout-api/internal/school"
	storage "github.com/schoolscout/schoolscout-api/internal/storage"
	syncx "github.com/schoolscout/schoolscout-api/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	schools := school.NewSQLStore(dbh, cfg.DBDriver)
	ratings := rating.NewSQLStore(dbh)
	prefStore := prefs.NewStore(prefs.NewSQLBackend(dbh))
	events := syncx.NewEventRepo(dbh)

	// --- Auth (local JWT for the admin surface) ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := auth.NewAuthService(secret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc))
	}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// Public finder surface: everything a parent's browser hits directly.
	r.Get("/schools", api.ListSchoolsHandler(schools))
	r.Get("/schools/{schoolID}", api.GetSchoolHandler(schools, ratings))
	r.Get("/compare", api.CompareHandler(schools))
	r.Get("/map/markers", api.MapMarkersHandler(schools))
	r.Post("/api/parking-ratings", api.SubmitParkingRatingHandler(ratings, schools, events))
	r.Get("/api/parking-ratings/{schoolID}", api.GetParkingRatingsHandler(ratings))
	r.Get("/prefs/send-info", api.GetSENDPrefHandler(prefStore))

	// Imagery reads are public so cards can embed the URLs directly.
	r.Get("/assets/*", api.GetAssetHandler(bs))

	// Protected admin surface (JWT → role in context → RBAC).
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("schools:bulk_upsert")).
			Post("/admin/schools/bulk", api.BulkUpsertSchoolsHandler(schools, events))

		pr.With(rbac.Require("schools:bulk_upsert")).
			Post("/assets/{schoolID}", api.UploadAssetHandler(bs))

		pr.With(rbac.Require("prefs:write")).
			Put("/prefs/send-info", api.PutSENDPrefHandler(prefStore, events))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
