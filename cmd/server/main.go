package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-booking/internal/config"
	"github.com/iliyamo/flight-seat-booking/internal/database"
	"github.com/iliyamo/flight-seat-booking/internal/handler"
	"github.com/iliyamo/flight-seat-booking/internal/middleware"
	"github.com/iliyamo/flight-seat-booking/internal/payment"
	"github.com/iliyamo/flight-seat-booking/internal/queue"
	"github.com/iliyamo/flight-seat-booking/internal/repository"
	"github.com/iliyamo/flight-seat-booking/internal/router"
	"github.com/iliyamo/flight-seat-booking/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database: schema: %v", err)
	}

	flightRepo := repository.NewFlightRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	gateway := payment.NewProviderGateway(cfg.PaymentURL, cfg.PaymentAPIKey, cfg.PaymentTimeout)

	flightSvc := service.NewFlightService(flightRepo, seatRepo)
	bookingSvc := service.NewBookingService(flightRepo, seatRepo, bookingRepo, gateway)

	flightHandler := handler.NewFlightHandler(flightSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc, flightRepo)
	authHandler := handler.NewAuthHandler(cfg)

	// Rate limiting degrades to a no-op when Redis is unavailable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}
	bookMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// The consumer appends confirmed bookings to logs/bookings.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterPublic(e, flightHandler, bookingHandler, bookMW)
	router.RegisterOps(e, flightHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
