package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	h "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/handlers"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env.JWTSecret))
		auth.POST("/register", h.Register)

		// Public discovery: stops, trip search, seat maps
		api.GET("/stops", h.GetStops)
		api.GET("/trips", h.SearchTrips)
		api.GET("/trips/:id/seats", h.GetTripSeats)

		// Passenger surface
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(env.JWTSecret))
		{
			bookings := authed.Group("/bookings")
			bookings.POST("/quote", h.QuoteBooking)
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListMyBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("/:id/cancel", h.CancelBooking)
			bookings.POST("/:id/pay", h.PayBooking)
			bookings.GET("/:id/payments", h.ListBookingPayments)
			bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)

			authed.GET("/notifications", h.ListNotifications)
			authed.POST("/notifications/:id/read", h.MarkNotificationRead)
			authed.POST("/issues", h.CreateIssue)
		}

		// Driver surface: boarding roster and ticket scanning
		driver := api.Group("/driver")
		driver.Use(middleware.RequireAuth(env.JWTSecret), middleware.RequireRoles(domain.RoleDriver, domain.RoleTransporter))
		{
			driver.GET("/trips/:id/roster", h.GetRoster)
			driver.POST("/trips/:id/roster/:ticket/board", h.BoardPassenger)
			driver.POST("/trips/:id/roster/:ticket/miss", h.MissPassenger)
			driver.POST("/trips/:id/close-doors", h.CloseDoors)
			driver.POST("/trips/:id/scan", h.ScanTicket)
		}

		// Transporter surface: fleet management and reporting
		transporter := api.Group("/transporter")
		transporter.Use(middleware.RequireAuth(env.JWTSecret), middleware.RequireRoles(domain.RoleTransporter))
		{
			transporter.GET("/vehicles", h.GetVehicles)
			transporter.POST("/vehicles", h.CreateVehicle)
			transporter.PUT("/vehicles/:id", h.UpdateVehicle)
			transporter.DELETE("/vehicles/:id", h.DeleteVehicle)

			transporter.GET("/drivers", h.GetDrivers)
			transporter.POST("/drivers", h.CreateDriver)
			transporter.PUT("/drivers/:id", h.UpdateDriver)
			transporter.DELETE("/drivers/:id", h.DeleteDriver)

			transporter.GET("/issues", h.ListIssues)
			transporter.GET("/reports", h.GetFleetReport)
		}
	}

	h.SetRouter(r)
	return r
}
