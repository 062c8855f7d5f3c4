package router

import (
	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
	publichandlers "github.com/flightbase-api/internal/http/handlers/public"
	staffhandlers "github.com/flightbase-api/internal/http/handlers/staff"
	"github.com/flightbase-api/internal/logger"
	"github.com/flightbase-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", publicHandler.Login)
			auth.POST("/register", publicHandler.Register)
		}

		// Catalog reads are open.
		public := apiV1.Group("")
		{
			public.GET("/airports", publicHandler.ListAirports)
			public.GET("/airports/:id", publicHandler.GetAirport)
			public.GET("/airlines", publicHandler.ListAirlines)
			public.GET("/airlines/:id", publicHandler.GetAirline)
			public.GET("/airplanes", publicHandler.ListAirplanes)
			public.GET("/airplanes/:id", publicHandler.GetAirplane)
			public.GET("/airplane-types", publicHandler.ListAirplaneTypes)
			public.GET("/airplane-types/:id", publicHandler.GetAirplaneType)
			public.GET("/flights", publicHandler.ListFlights)
			public.GET("/flights/:id", publicHandler.GetFlight)
			public.GET("/flight-numbers/:flightno", publicHandler.GetFlightsByFlightNo)
			public.GET("/flight-schedules", publicHandler.ListFlightSchedules)
			public.GET("/flight-schedules/:id", publicHandler.GetFlightSchedule)
			public.GET("/passengers", publicHandler.ListPassengers)
			public.GET("/passengers/:id", publicHandler.GetPassenger)
			public.GET("/bookings", publicHandler.ListBookings)
			public.GET("/bookings/:id", publicHandler.GetBooking)
			public.GET("/sensor/:airportCode", publicHandler.GetSensorReading)
			public.GET("/external/weather/:airportCode", publicHandler.GetWeather)
		}

		// Authenticated staff routes.
		authed := apiV1.Group("")
		authed.Use(StaffJWTAuthMiddleware(c.AuthService, c.StaffRepo))
		{
			authed.GET("/auth/me", staffHandler.Me)
			authed.POST("/staff/:id/change-password", staffHandler.ChangePassword)
			authed.GET("/staff/:id", staffHandler.GetStaff)
			authed.PUT("/staff/:id", staffHandler.UpdateStaff)

			// Catalog writes require at least operator.
			writes := authed.Group("")
			writes.Use(RequireRole(c.AuthzService, constants.RoleOperator))
			{
				writes.POST("/airports", staffHandler.CreateAirport)
				writes.PUT("/airports/:id", staffHandler.UpdateAirport)
				writes.DELETE("/airports/:id", staffHandler.DeleteAirport)

				writes.POST("/airlines", staffHandler.CreateAirline)
				writes.PUT("/airlines/:id", staffHandler.UpdateAirline)
				writes.DELETE("/airlines/:id", staffHandler.DeleteAirline)

				writes.POST("/airplanes", staffHandler.CreateAirplane)
				writes.PUT("/airplanes/:id", staffHandler.UpdateAirplane)
				writes.DELETE("/airplanes/:id", staffHandler.DeleteAirplane)

				writes.POST("/airplane-types", staffHandler.CreateAirplaneType)
				writes.PUT("/airplane-types/:id", staffHandler.UpdateAirplaneType)
				writes.DELETE("/airplane-types/:id", staffHandler.DeleteAirplaneType)

				writes.POST("/flights", staffHandler.CreateFlight)
				writes.PUT("/flights/:id", staffHandler.UpdateFlight)
				writes.DELETE("/flights/:id", staffHandler.DeleteFlight)

				writes.POST("/flight-schedules", staffHandler.CreateFlightSchedule)
				writes.PUT("/flight-schedules/:id", staffHandler.UpdateFlightSchedule)
				writes.DELETE("/flight-schedules/:id", staffHandler.DeleteFlightSchedule)

				writes.POST("/passengers", staffHandler.CreatePassenger)
				writes.PUT("/passengers/:id", staffHandler.UpdatePassenger)
				writes.DELETE("/passengers/:id", staffHandler.DeletePassenger)

				writes.POST("/bookings", staffHandler.CreateBooking)
				writes.PUT("/bookings/:id", staffHandler.UpdateBooking)
				writes.DELETE("/bookings/:id", staffHandler.DeleteBooking)
			}

			// Account administration requires admin.
			admin := authed.Group("")
			admin.Use(RequireRole(c.AuthzService, constants.RoleAdmin))
			{
				admin.GET("/staff", staffHandler.ListStaff)
				admin.POST("/staff/:id/deactivate", staffHandler.DeactivateStaff)
				admin.GET("/staff-login-logs", staffHandler.ListLoginLogs)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
