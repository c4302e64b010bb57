package repository // repository defines data access for seats

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/flight-seat-booking/internal/model"
)

// SeatRepo provides methods to work with seats in the database.  Seat
// lookups used by the booking flow are composite on (seat, flight) so
// that a seat ID from one flight can never address a seat on another.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// Create inserts a single seat record with the reservation flag unset.
// On success the seat's ID is populated. A duplicate seat name on the
// same flight returns ErrSeatExists.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (flight_id, seat_name) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.FlightID, s.SeatName)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrSeatExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByIDAndFlight retrieves a seat by its id scoped to a flight.
func (r *SeatRepo) GetByIDAndFlight(ctx context.Context, seatID, flightID uint64) (*model.Seat, error) {
	const q = `SELECT id, flight_id, seat_name, is_reserved, created_at, updated_at
	           FROM seats WHERE id = ? AND flight_id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, seatID, flightID).
		Scan(&s.ID, &s.FlightID, &s.SeatName, &s.IsReserved, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetByNameAndFlight retrieves a seat by its name scoped to a flight.
func (r *SeatRepo) GetByNameAndFlight(ctx context.Context, seatName string, flightID uint64) (*model.Seat, error) {
	const q = `SELECT id, flight_id, seat_name, is_reserved, created_at, updated_at
	           FROM seats WHERE seat_name = ? AND flight_id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, seatName, flightID).
		Scan(&s.ID, &s.FlightID, &s.SeatName, &s.IsReserved, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateName renames a seat within its flight. Returns ErrSeatNotFound
// when the composite lookup misses and ErrSeatExists when the new name
// collides with another seat on the flight.
func (r *SeatRepo) UpdateName(ctx context.Context, seatID, flightID uint64, seatName string) error {
	const q = `UPDATE seats
	           SET seat_name = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND flight_id = ?`
	res, err := r.db.ExecContext(ctx, q, seatName, seatID, flightID)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrSeatExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM seats WHERE id = ? AND flight_id = ?`, seatID, flightID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSeatNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a seat scoped to its flight.
func (r *SeatRepo) Delete(ctx context.Context, seatID, flightID uint64) error {
	const q = `DELETE FROM seats WHERE id = ? AND flight_id = ?`
	res, err := r.db.ExecContext(ctx, q, seatID, flightID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	return nil
}

// SetReserved marks a seat's cached reservation flag.  The statement is
// idempotent: applying it to an already-reserved seat changes nothing,
// so a retry after a partial failure is safe.  Callers treat a failure
// here as a cache-consistency concern, not a booking failure; the
// booked_seats constraint remains the source of truth either way.
func (r *SeatRepo) SetReserved(ctx context.Context, seatID uint64) error {
	const q = `UPDATE seats SET is_reserved = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, seatID)
	return err
}

// ListAvailableByFlight returns the flight's seats whose reservation
// flag is still unset, ordered by seat name for deterministic output.
func (r *SeatRepo) ListAvailableByFlight(ctx context.Context, flightID uint64) ([]model.Seat, error) {
	const q = `SELECT id, flight_id, seat_name, is_reserved, created_at, updated_at
	           FROM seats
	           WHERE flight_id = ? AND is_reserved = 0
	           ORDER BY seat_name`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.FlightID, &s.SeatName, &s.IsReserved, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
