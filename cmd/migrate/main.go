// Command migrate creates the database schema without starting the server.
// Useful for provisioning a fresh database file or verifying the store is
// writable before a deploy. Safe to run repeatedly: schema creation is
// create-if-absent.
package main

import (
	"log"

	"github.com/joho/godotenv"

	platformdb "calendar_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := platformdb.LoadConfigFromEnv()
	db, err := platformdb.Open(cfg, nil)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := platformdb.InitSchema(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Printf("schema ready at %s", cfg.Path)
}
