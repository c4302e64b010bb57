// Package service holds the business logic sitting between the HTTP
// handlers and the repositories.  BookingService owns the seat-booking
// protocol; FlightService owns flight and seat management.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/flight-seat-booking/internal/model"
	"github.com/iliyamo/flight-seat-booking/internal/payment"
	"github.com/iliyamo/flight-seat-booking/internal/repository"
	"github.com/iliyamo/flight-seat-booking/internal/status"
)

// FlightFinder resolves flights for the booking flow.
type FlightFinder interface {
	GetByID(ctx context.Context, id uint64) (*model.Flight, error)
}

// SeatStore resolves seats and maintains the cached reservation flag.
type SeatStore interface {
	GetByIDAndFlight(ctx context.Context, seatID, flightID uint64) (*model.Seat, error)
	SetReserved(ctx context.Context, seatID uint64) error
}

// BookingLedger is the authoritative store of bookings.  Insert must be
// atomic with respect to the (seat, flight) uniqueness invariant under
// arbitrary concurrent callers and return repository.ErrSeatTaken for a
// duplicate.
type BookingLedger interface {
	Insert(ctx context.Context, seatID, flightID uint64) (*model.BookedSeat, error)
}

// BookingConfirmation is returned to the caller after a successful
// booking.
type BookingConfirmation struct {
	BookingID uint64    `json:"booking_id"`
	Reference string    `json:"reference"`
	FlightID  uint64    `json:"flight_id"`
	SeatID    uint64    `json:"seat_id"`
	SeatName  string    `json:"seat_name"`
	BookedAt  time.Time `json:"booked_at"`
}

// BookingService coordinates seat booking.  It holds no lock of its
// own: correctness under concurrency comes entirely from the ledger's
// uniqueness constraint, so a slow payment call never blocks other
// bookings, not even for the same seat.
type BookingService struct {
	flights FlightFinder
	seats   SeatStore
	ledger  BookingLedger
	gateway payment.Gateway
}

// NewBookingService constructs a BookingService.  All dependencies must
// be non-nil.
func NewBookingService(flights FlightFinder, seats SeatStore, ledger BookingLedger, gateway payment.Gateway) *BookingService {
	if flights == nil || seats == nil || ledger == nil || gateway == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{flights: flights, seats: seats, ledger: ledger, gateway: gateway}
}

// Book sells a single seat on a flight at most once.
//
// The steps, in order:
//  1. resolve the flight, then the seat scoped to it (not-found fails
//     fast with codes 103/105, flight checked first);
//  2. short-circuit on the seat's cached reservation flag (code 106) so
//     an obviously sold seat never reaches the payment provider — an
//     optimization only, since the flag read and the ledger insert are
//     not atomic with respect to other callers;
//  3. charge the flight price and await completion; a decline, error or
//     timeout aborts with code 107 and no state has been touched;
//  4. insert the booking record; the ledger's unique key decides the
//     winner between concurrent attempts.  A duplicate means this
//     caller lost the race: its charge is refunded best-effort and the
//     attempt fails with code 106.  Any other insert error is returned
//     as-is and surfaces as an opaque internal error;
//  5. set the seat's cached flag.  Failure here is logged, never
//     surfaced: the ledger row already makes the booking authoritative.
func (s *BookingService) Book(ctx context.Context, flightID, seatID uint64) (*BookingConfirmation, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, status.Errorf(status.FlightNotFound)
		}
		return nil, err
	}
	seat, err := s.seats.GetByIDAndFlight(ctx, seatID, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, status.Errorf(status.SeatNotFound)
		}
		return nil, err
	}
	if seat.IsReserved {
		log.Printf("booking: seat %d already booked for flight %d (fast path)", seatID, flightID)
		return nil, status.Errorf(status.AlreadyBooked)
	}

	charge, err := s.gateway.Charge(ctx, flight.PriceCents)
	if err != nil {
		log.Printf("booking: payment error for seat %d flight %d: %v", seatID, flightID, err)
		return nil, status.Errorf(status.PaymentError)
	}
	if charge.Status != payment.StatusApproved {
		log.Printf("booking: payment declined for seat %d flight %d", seatID, flightID)
		return nil, status.Errorf(status.PaymentError)
	}

	rec, err := s.ledger.Insert(ctx, seatID, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			// Lost the race after the charge went through: compensate.
			log.Printf("booking: seat %d already booked for flight %d, refunding charge %s", seatID, flightID, charge.Reference)
			if rerr := s.gateway.Refund(ctx, charge.Reference); rerr != nil {
				log.Printf("booking: refund of charge %s failed: %v", charge.Reference, rerr)
			}
			return nil, status.Errorf(status.AlreadyBooked)
		}
		return nil, err
	}

	if err := s.seats.SetReserved(ctx, seatID); err != nil {
		log.Printf("booking: failed to set reserved flag for seat %d: %v", seatID, err)
	}

	log.Printf("booking: seat %s (%d) booked on flight %d, reference %s", seat.SeatName, seatID, flightID, rec.Reference)
	return &BookingConfirmation{
		BookingID: rec.ID,
		Reference: rec.Reference,
		FlightID:  flightID,
		SeatID:    seatID,
		SeatName:  seat.SeatName,
		BookedAt:  rec.BookedAt,
	}, nil
}
