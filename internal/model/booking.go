package model

import "time"

// BookedSeat is the authoritative record that a seat has been sold.
// At most one row may exist per (seat_id, flight_id) pair; the unique
// key on those columns is the single serialization point between
// concurrent booking attempts.  Rows are inserted only after a
// successful payment and are never updated.
//
// Fields:
//  ID        – primary key identifier.
//  SeatID    – seat that was booked.
//  FlightID  – flight the seat belongs to.
//  Reference – external booking reference returned to the client.
//  BookedAt  – when the booking was committed.
type BookedSeat struct {
	ID        uint64    // booked_seats.id
	SeatID    uint64    // booked_seats.seat_id
	FlightID  uint64    // booked_seats.flight_id
	Reference string    // booked_seats.reference
	BookedAt  time.Time // booked_seats.booked_at
}
