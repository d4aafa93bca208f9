package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"transferhub/internal/config"
	"transferhub/internal/database"
	"transferhub/internal/middleware"
	"transferhub/internal/modules/attribution"
	"transferhub/internal/modules/blog"
	"transferhub/internal/modules/booking"
	"transferhub/internal/modules/console"
	"transferhub/internal/modules/lead"
	"transferhub/internal/modules/notify"
	"transferhub/internal/modules/pricing"
	"transferhub/internal/pkg/session"
	"transferhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	leadRepo := repository.NewLeadRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	postRepo := repository.NewPostRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	sessions := session.New(cfg.SessionSecret, cfg.SessionTTL)

	leadService := lead.NewService(leadRepo, cfg.DefaultCurrency)
	leadHandler := lead.NewHandler(leadService)

	bookingService := booking.NewService(bookingRepo, leadService, notify.NewLogSender(), cfg.DefaultCurrency)
	bookingHandler := booking.NewHandler(bookingService)

	pricingService := pricing.NewService(priceRepo, cfg.DefaultCurrency)
	pricingHandler := pricing.NewHandler(pricingService)

	blogService := blog.NewService(postRepo)
	blogHandler := blog.NewHandler(blogService)

	consoleService := console.NewService(sessions, cfg.AdminPassword, cfg.CMSPassword)
	consoleHandler := console.NewHandler(consoleService, cfg)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public, with first-click attribution capture
		public := v1.Group("/")
		public.Use(attribution.Capture(cfg.CookiePath, cfg.CookieSecure))
		{
			leadHandler.RegisterRoutes(public)
			bookingHandler.RegisterRoutes(public)
			pricingHandler.RegisterRoutes(public)
			blogHandler.RegisterRoutes(public)
		}

		consoleHandler.RegisterRoutes(v1)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireConsole(sessions, cfg.CookieName, session.ConsoleAdmin))
		{
			leadHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
			pricingHandler.RegisterAdminRoutes(admin)
		}

		cms := v1.Group("/cms")
		cms.Use(middleware.RequireConsole(sessions, cfg.CookieName, session.ConsoleCMS))
		{
			blogHandler.RegisterCMSRoutes(cms)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
