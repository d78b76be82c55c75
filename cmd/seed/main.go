// Command seed populates the configured database with generated demo data.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	postsPerUser := flag.Int("posts-per-user", 5, "Number of posts per user")
	maxDays := flag.Int("max-days", 30, "Spread generated timestamps over this many days")
	clean := flag.Bool("clean", false, "Delete existing rows before seeding")
	rngSeed := flag.Int64("seed", 0, "Fix the RNG seed for reproducible output (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:     *numUsers,
		PostsPerUser: *postsPerUser,
		MaxDays:      *maxDays,
		Clean:        *clean,
		Seed:         *rngSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
