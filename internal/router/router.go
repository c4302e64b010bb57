package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/flight-seat-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/flight-seat-booking/internal/middleware" // import middleware for JWT authentication and rate limiting
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the operator login endpoint.  The handler
// verifies credentials against the configured operations account and
// issues the access token used by the management routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/v1/auth/login", a.Login)
}

// RegisterPublic registers the passenger-facing endpoints: the flight
// listing with available seats and the booking operation.  The booking
// route carries the rate limiter so abusive clients are shed before
// they reach the payment provider; bookMW may be nil when rate limiting
// is disabled.
func RegisterPublic(e *echo.Echo, f *handler.FlightHandler, b *handler.BookingHandler, bookMW echo.MiddlewareFunc) {
	// List all flights together with their currently available seats.
	e.GET("/v1/flights", f.ListFlights)
	// Book a single seat on a flight.
	if bookMW != nil {
		e.POST("/v1/flights/:flightId/seats/:seatId/book", b.BookSeat, bookMW)
	} else {
		e.POST("/v1/flights/:flightId/seats/:seatId/book", b.BookSeat)
	}
}

// RegisterOps registers the airline-operations routes for managing
// flights and seats.  All handlers in this group require a valid access
// token issued by the login endpoint.
func RegisterOps(e *echo.Echo, f *handler.FlightHandler, jwtSecret string) {
	ops := e.Group("/v1")
	ops.Use(middleware.JWTAuth(jwtSecret))
	ops.POST("/flights", f.CreateFlight)
	ops.PUT("/flights/:flightId", f.UpdateFlight)
	ops.DELETE("/flights/:flightId", f.DeleteFlight)
	ops.POST("/flights/:flightId/seats", f.AddSeat)
	ops.PUT("/flights/:flightId/seats/:seatId", f.UpdateSeat)
	ops.DELETE("/flights/:flightId/seats/:seatId", f.DeleteSeat)
}
