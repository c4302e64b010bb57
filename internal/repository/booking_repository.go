package repository // repository for the booking ledger

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/iliyamo/flight-seat-booking/internal/model"
)

// BookingRepo persists booking records in the booked_seats table.  The
// table's UNIQUE KEY on (seat_id, flight_id) is the serialization point
// between concurrent booking attempts: of N racing inserts for the same
// pair exactly one commits and the rest fail with a duplicate-entry
// error, which Insert translates to ErrSeatTaken.  No application-level
// locking is involved.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo given a DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Insert records a booking for the given seat and flight.  It generates
// the external booking reference and populates ID, Reference and
// BookedAt on the returned record.  When a record already exists for
// the pair it returns ErrSeatTaken; any other error is a storage fault
// the caller should treat as fatal.
func (r *BookingRepo) Insert(ctx context.Context, seatID, flightID uint64) (*model.BookedSeat, error) {
	ref := uuid.NewString()
	const q = `INSERT INTO booked_seats (seat_id, flight_id, reference) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, seatID, flightID, ref)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrSeatTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	rec := &model.BookedSeat{ID: uint64(id), SeatID: seatID, FlightID: flightID, Reference: ref}
	// Read back the DB-assigned timestamp so the confirmation carries it.
	const sel = `SELECT booked_at FROM booked_seats WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, sel, rec.ID).Scan(&rec.BookedAt); err != nil {
		return nil, err
	}
	return rec, nil
}
