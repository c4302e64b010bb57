package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-booking/internal/queue"
	"github.com/iliyamo/flight-seat-booking/internal/repository"
	"github.com/iliyamo/flight-seat-booking/internal/service"
)

// BookingHandler exposes the public booking endpoint.  It delegates the
// whole protocol to the BookingService and, on success, publishes a
// seat.booked event for downstream consumers.  The publish is
// best-effort: the booking is already committed in the ledger, so a
// broker outage never turns a sold seat into an error response.
type BookingHandler struct {
	Bookings *service.BookingService
	Flights  *repository.FlightRepo
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService, flights *repository.FlightRepo) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Flights: flights}
}

// BookSeat handles POST /v1/flights/:flightId/seats/:seatId/book.
func (h *BookingHandler) BookSeat(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	seatID, ok := parseID(c, "seatId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}

	conf, err := h.Bookings.Book(c.Request().Context(), flightID, seatID)
	if err != nil {
		return respondError(c, err)
	}

	if h.Flights != nil {
		if flight, ferr := h.Flights.GetByID(c.Request().Context(), flightID); ferr == nil {
			_ = queue.PublishSeatBooked(c.Request().Context(), queue.SeatBookedEvent{
				BookingID:   conf.BookingID,
				Reference:   conf.Reference,
				FlightID:    conf.FlightID,
				FlightName:  flight.FlightName,
				Origin:      flight.Origin,
				Destination: flight.Destination,
				SeatID:      conf.SeatID,
				SeatName:    conf.SeatName,
				PriceCents:  flight.PriceCents,
				BookedAt:    conf.BookedAt.UTC().Format(time.RFC3339),
			})
		}
	}

	return respondOK(c, conf)
}
