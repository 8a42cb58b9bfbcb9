// Command updatepriority backfills the priority field on client records
// created before the admin reorder feature existed. Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"formulario-clientes/db"
	"formulario-clientes/repository"
)

func main() {
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	repo := repository.NewClientRepository()
	updated, err := repo.BackfillPriority(context.Background())
	if err != nil {
		log.Fatalf("Failed to backfill priority: %v", err)
	}

	if updated == 0 {
		log.Printf("No records were missing the priority field")
	} else {
		log.Printf("✅ Backfilled priority on %d records", updated)
	}
	log.Printf("Update complete")
}
