package main

import (
	"context"
	"flag"
	"log"
	"os"

	"transferhub/internal/database"
	"transferhub/internal/modules/lead"
	"transferhub/internal/repository"
)

// Prints draft leads older than the given window, newest first. Meant to be
// run from cron for follow-up emails.
func main() {
	hours := flag.Int("hours", 24, "minimum age in hours of a draft lead")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := lead.NewService(repository.NewLeadRepository(db), "")

	leads, err := svc.FindAbandoned(context.Background(), *hours)
	if err != nil {
		log.Fatalf("abandoned lead query failed: %v", err)
	}

	log.Printf("abandoned leads (older than %dh): %d", *hours, len(leads))
	for _, l := range leads {
		contact := l.Email
		if contact == "" {
			contact = l.ContactNumber
		}
		log.Printf("lead=%s type=%s contact=%s quoted=%.2f %s created=%s",
			l.ID, l.BookingType, contact, l.QuotedPrice(), l.Currency, l.CreatedAt.Format("2006-01-02 15:04"))
	}
}
