package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"venue-booking/config"
	"venue-booking/internal/handler"
	"venue-booking/internal/middleware"
	"venue-booking/internal/repository"
	"venue-booking/internal/service"
	"venue-booking/pkg/database"
	"venue-booking/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	pricing := service.NewPricingResolver(venueRepo, packageRepo)
	bookingSvc := service.NewBookingService(bookingRepo, pricing, publisher)
	venueSvc := service.NewVenueService(venueRepo)
	packageSvc := service.NewPackageService(packageRepo)
	userSvc := service.NewUserService(userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "venue-booking"})
	})

	validate := validator.New()

	v1 := e.Group("/api/v1")
	admin := v1.Group("/admin", middleware.RequireUser, middleware.RequireAdmin)

	handler.NewBookingHandler(bookingSvc, validate).RegisterRoutes(v1, admin)
	handler.NewVenueHandler(venueSvc, packageSvc, validate).RegisterRoutes(v1, admin)
	handler.NewPackageHandler(packageSvc, validate).RegisterRoutes(v1, admin)
	handler.NewUserHandler(userSvc, validate).RegisterRoutes(v1, admin)

	log.Printf("Venue Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
