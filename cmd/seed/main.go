package main

import (
	"context"
	"log"
	"os"
	"time"

	"transferhub/internal/database"
	"transferhub/internal/domain"
	"transferhub/internal/repository"

	"github.com/google/uuid"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "transferhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM route_prices")
	db.Exec("DELETE FROM posts")

	ctx := context.Background()
	now := time.Now().UTC()

	// ================== PRICE LIST ==================
	log.Println("Seeding price list...")

	priceRepo := repository.NewPriceRepository(db)
	routes := []domain.RoutePrice{
		{Pickup: "sydney airport", Dropoff: "cbd", VehicleType: "sedan", PriceCents: 9500, Currency: "AUD"},
		{Pickup: "sydney airport", Dropoff: "cbd", VehicleType: "van", PriceCents: 14500, Currency: "AUD"},
		{Pickup: "sydney airport", Dropoff: "north shore", VehicleType: "sedan", PriceCents: 12000, Currency: "AUD"},
		{Pickup: "sydney airport", Dropoff: "eastern suburbs", VehicleType: "sedan", PriceCents: 8500, Currency: "AUD"},
		{Pickup: "cbd", Dropoff: "sydney airport", VehicleType: "sedan", PriceCents: 9500, Currency: "AUD"},
	}
	for i := range routes {
		routes[i].CreatedAt = now
		routes[i].UpdatedAt = now
		if err := priceRepo.Create(ctx, &routes[i]); err != nil {
			log.Fatal("seed route failed:", err)
		}
	}
	log.Printf("Seeded %d routes", len(routes))

	// ================== BLOG ==================
	log.Println("Seeding posts...")

	postRepo := repository.NewPostRepository(db)
	posts := []domain.Post{
		{
			ID:        uuid.NewString(),
			Title:     "Airport Transfer Tips",
			Slug:      "airport-transfer-tips",
			Excerpt:   "How to make your airport pickup painless.",
			Body:      "Book ahead, add your flight number, and we track delays for you.",
			Published: true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Hourly Hire Explained",
			Slug:      "hourly-hire-explained",
			Excerpt:   "When an hourly booking beats point-to-point.",
			Body:      "For weddings, wine tours and multi-stop days, hourly hire is simpler.",
			Published: false,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i := range posts {
		if err := postRepo.Create(ctx, &posts[i]); err != nil {
			log.Fatal("seed post failed:", err)
		}
	}
	log.Printf("Seeded %d posts", len(posts))

	log.Println("Done")
}
