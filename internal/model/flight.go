package model

import "time"

// Flight represents a scheduled flight that passengers can book seats
// on.  Each flight has a unique name, an origin/destination pair, a
// departure and arrival time and a single ticket price that applies to
// every seat on the plane.  This struct corresponds to a row in the
// `flights` table.
//
// Fields:
//  ID            – primary key identifier.
//  FlightName    – unique flight designator (e.g. TK1923).
//  Origin        – departure airport or city.
//  Destination   – arrival airport or city.
//  DepartureTime – when the flight departs (UTC).
//  ArrivalTime   – when the flight arrives (UTC).
//  PriceCents    – ticket price in cents charged per seat.
//  CreatedAt     – timestamp when the flight was created.
//  UpdatedAt     – timestamp of last update.
type Flight struct {
	ID            uint64    // flights.id
	FlightName    string    // flights.flight_name
	Origin        string    // flights.origin
	Destination   string    // flights.destination
	DepartureTime time.Time // flights.departure_time
	ArrivalTime   time.Time // flights.arrival_time
	PriceCents    uint32    // flights.price_cents
	CreatedAt     time.Time // flights.created_at
	UpdatedAt     time.Time // flights.updated_at
}
