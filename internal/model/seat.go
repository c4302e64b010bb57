package model

import "time"

// Seat describes a bookable seat on a flight.  Seats are uniquely
// identified by their name within a flight (e.g. 12A).  The IsReserved
// flag mirrors booking state for fast availability checks; it is a
// cache, not the source of truth.  The authoritative record of a
// booking is the row in `booked_seats` (see BookedSeat), whose unique
// constraint is what actually prevents double booking.  The flag may
// briefly lag the ledger under contention.
//
// Fields:
//  ID         – primary key identifier.
//  FlightID   – flight this seat belongs to.
//  SeatName   – seat designator, unique per flight.
//  IsReserved – cached reservation flag (non-authoritative).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Seat struct {
	ID         uint64    // seats.id
	FlightID   uint64    // seats.flight_id
	SeatName   string    // seats.seat_name
	IsReserved bool      // seats.is_reserved
	CreatedAt  time.Time // seats.created_at
	UpdatedAt  time.Time // seats.updated_at
}
