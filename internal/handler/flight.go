package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-booking/internal/service"
)

// FlightHandler exposes the airline-operations endpoints for managing
// flights and their seats, plus the public flight listing.  All
// validation beyond presence checks happens in the service layer so the
// transaction codes stay in one place.
type FlightHandler struct {
	Flights *service.FlightService
}

// NewFlightHandler constructs a FlightHandler.
func NewFlightHandler(flights *service.FlightService) *FlightHandler {
	if flights == nil {
		panic("nil service passed to NewFlightHandler")
	}
	return &FlightHandler{Flights: flights}
}

// parseID parses a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// CreateFlight handles POST /v1/flights.
func (h *FlightHandler) CreateFlight(c echo.Context) error {
	var in service.FlightInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.FlightName == "" || in.Origin == "" || in.Destination == "" || in.DepartureTime == "" || in.ArrivalTime == "" || in.PriceCents == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all flight fields are required"})
	}
	flight, err := h.Flights.CreateFlight(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{
		"flight_id": flight.ID,
		"message":   "Flight created successfully",
	})
}

// UpdateFlight handles PUT /v1/flights/:flightId.
func (h *FlightHandler) UpdateFlight(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	var in service.FlightInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Flights.UpdateFlight(c.Request().Context(), flightID, in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{
		"message": "Flight " + strconv.FormatUint(flightID, 10) + " updated successfully",
	})
}

// DeleteFlight handles DELETE /v1/flights/:flightId.
func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	if err := h.Flights.DeleteFlight(c.Request().Context(), flightID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{"message": "Flight deleted successfully"})
}

// AddSeat handles POST /v1/flights/:flightId/seats.
func (h *FlightHandler) AddSeat(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	var body struct {
		SeatName string `json:"seat_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.SeatName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_name is required"})
	}
	seat, err := h.Flights.AddSeat(c.Request().Context(), flightID, body.SeatName)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{
		"seat_id": seat.ID,
		"message": "Seat added to flight " + strconv.FormatUint(flightID, 10) + " successfully",
	})
}

// UpdateSeat handles PUT /v1/flights/:flightId/seats/:seatId.
func (h *FlightHandler) UpdateSeat(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	seatID, ok := parseID(c, "seatId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	var body struct {
		SeatName string `json:"seat_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.SeatName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_name is required"})
	}
	if err := h.Flights.UpdateSeat(c.Request().Context(), flightID, seatID, body.SeatName); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{
		"message": "Seat " + strconv.FormatUint(seatID, 10) + " updated for flight " + strconv.FormatUint(flightID, 10) + " successfully",
	})
}

// DeleteSeat handles DELETE /v1/flights/:flightId/seats/:seatId.
func (h *FlightHandler) DeleteSeat(c echo.Context) error {
	flightID, ok := parseID(c, "flightId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	seatID, ok := parseID(c, "seatId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	if err := h.Flights.DeleteSeat(c.Request().Context(), flightID, seatID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{
		"message": "Seat " + strconv.FormatUint(seatID, 10) + " deleted successfully",
	})
}

// ListFlights handles GET /v1/flights.  It returns every flight with
// its currently available seats.
func (h *FlightHandler) ListFlights(c echo.Context) error {
	flights, err := h.Flights.ListFlights(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, echo.Map{"flights": flights})
}
