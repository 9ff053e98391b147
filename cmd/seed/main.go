// Command main runs the collection seeder for ClubVerse.
package main

import (
	"flag"
	"log"

	"clubverse/internal/config"
	"clubverse/internal/seed"
	"clubverse/internal/store"
)

func main() {
	numAdmins := flag.Int("admins", 5, "Number of club admins to create")
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 50, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clear collections before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	collections, err := store.Open(cfg.DataDir, nil)
	if err != nil {
		log.Fatalf("Failed to open collections: %v", err)
	}

	s := seed.NewSeeder(collections)
	if err := s.Seed(seed.Options{
		NumAdmins:   *numAdmins,
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All test accounts have the password: password123")
}
