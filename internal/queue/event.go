// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatBookedEvent is published when a seat is successfully booked.
// It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type SeatBookedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Reference   string `json:"reference"`
	FlightID    uint64 `json:"flight_id"`
	FlightName  string `json:"flight_name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	SeatID      uint64 `json:"seat_id"`
	SeatName    string `json:"seat_name"`
	PriceCents  uint32 `json:"price_cents"`
	BookedAt    string `json:"booked_at"`
}
