// Command loader bulk-imports a school feed (JSON array) into the database,
// for seeding an instance without going through the admin API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/schoolscout/schoolscout-api/internal/config"
	"github.com/schoolscout/schoolscout-api/internal/db"
	"github.com/schoolscout/schoolscout-api/internal/school"
)

func main() {
	path := flag.String("file", "schools.json", "path to a JSON array of school records")
	flag.Parse()

	cfg := config.FromEnv()

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open feed: %v", err)
	}
	defer f.Close()

	var rows []school.School
	if err := json.NewDecoder(f).Decode(&rows); err != nil {
		log.Fatalf("decode feed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := school.NewSQLStore(dbh, cfg.DBDriver)

	n := 0
	for _, s := range rows {
		if s.ID == "" || s.Name == "" {
			log.Printf("skipping record %d: id and name required", n)
			continue
		}
		if err := store.PutSchool(ctx, s); err != nil {
			log.Fatalf("upsert %s: %v", s.ID, err)
		}
		n++
	}
	log.Printf("loaded %d schools from %s (db=%s)", n, *path, cfg.DBDriver)
}
