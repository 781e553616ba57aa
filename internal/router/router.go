package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amirlan/photobooking/internal/handler"
	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/middleware"
)

type Config struct {
	Log           *logger.Logger
	CORSOrigins   []string
	Clients       *handler.ClientHandler
	Photographers *handler.PhotographerHandler
	Services      *handler.ServiceHandler
	Bookings      *handler.BookingHandler
	Associations  *handler.AssociationHandler
}

func New(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")

	clients := api.Group("/clients")
	clients.GET("/list", cfg.Clients.List)
	clients.GET("/find/:id", cfg.Clients.Find)
	clients.POST("/add", cfg.Clients.Add)
	clients.PUT("/update/:id", cfg.Clients.Update)
	clients.DELETE("/delete/:id", cfg.Clients.Delete)

	photographers := api.Group("/photographers")
	photographers.GET("/list", cfg.Photographers.List)
	photographers.GET("/find/:id", cfg.Photographers.Find)
	photographers.POST("/add", cfg.Photographers.Add)
	photographers.PUT("/update/:id", cfg.Photographers.Update)
	photographers.DELETE("/delete/:id", cfg.Photographers.Delete)

	services := api.Group("/services")
	services.GET("/list", cfg.Services.List)
	services.GET("/find/:id", cfg.Services.Find)
	services.POST("/add", cfg.Services.Add)
	services.PUT("/update/:id", cfg.Services.Update)
	services.DELETE("/delete/:id", cfg.Services.Delete)
	services.GET("/list-bookings-by-service/:id", cfg.Services.ListBookingsByService)

	bookings := api.Group("/bookings")
	bookings.GET("/list", cfg.Bookings.List)
	bookings.GET("/find/:id", cfg.Bookings.Find)
	bookings.POST("/add", cfg.Bookings.Add)
	bookings.PUT("/update/:id", cfg.Bookings.Update)
	bookings.DELETE("/delete/:id", cfg.Bookings.Delete)
	bookings.GET("/for-photographer/:id", cfg.Bookings.ForPhotographer)
	bookings.GET("/for-service/:id", cfg.Bookings.ForService)
	bookings.GET("/services-for-booking/:id", cfg.Bookings.ServicesForBooking)
	bookings.GET("/history/:id", cfg.Bookings.History)

	associations := api.Group("/booking-services")
	associations.GET("/list", cfg.Associations.List)
	associations.GET("/find/:bookingId/:serviceId", cfg.Associations.Find)
	associations.POST("/add", cfg.Associations.Add)
	associations.DELETE("/delete/:bookingId/:serviceId", cfg.Associations.Delete)

	return r
}
