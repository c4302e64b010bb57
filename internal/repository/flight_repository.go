package repository // repository defines data access for flights

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/flight-seat-booking/internal/model"
)

// FlightRepo provides CRUD operations for flights.  All timestamp
// fields are stored in UTC.  Flight names carry a unique index; the
// duplicate is surfaced as ErrFlightExists so handlers can map it to
// the FlightAlreadyExists transaction code.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// Create inserts a flight record. On success the flight's ID is
// populated. A duplicate flight name returns ErrFlightExists.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
	const q = `INSERT INTO flights (flight_name, origin, destination, departure_time, arrival_time, price_cents)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.FlightName, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime, f.PriceCents)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrFlightExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// GetByID retrieves a flight by its id.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.Flight, error) {
	const q = `SELECT id, flight_name, origin, destination, departure_time, arrival_time, price_cents, created_at, updated_at
	           FROM flights WHERE id = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&f.ID, &f.FlightName, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// GetByName retrieves a flight by its unique name.
func (r *FlightRepo) GetByName(ctx context.Context, name string) (*model.Flight, error) {
	const q = `SELECT id, flight_name, origin, destination, departure_time, arrival_time, price_cents, created_at, updated_at
	           FROM flights WHERE flight_name = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, name).Scan(
		&f.ID, &f.FlightName, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Update rewrites a flight's mutable columns. Returns ErrFlightNotFound
// when no row matches and ErrFlightExists when the new name collides.
func (r *FlightRepo) Update(ctx context.Context, f *model.Flight) error {
	const q = `UPDATE flights
	           SET flight_name = ?, origin = ?, destination = ?, departure_time = ?, arrival_time = ?, price_cents = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, f.FlightName, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime, f.PriceCents, f.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrFlightExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 for a no-op update; re-check existence
		// so callers get a consistent not-found signal.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM flights WHERE id = ?`, f.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrFlightNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a flight and, through foreign keys, its seats.
func (r *FlightRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM flights WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFlightNotFound
	}
	return nil
}

// ListAll returns every flight ordered by departure time ascending.
// Callers that need availability attach seats separately via
// SeatRepo.ListAvailableByFlight.
func (r *FlightRepo) ListAll(ctx context.Context) ([]model.Flight, error) {
	const q = `SELECT id, flight_name, origin, destination, departure_time, arrival_time, price_cents, created_at, updated_at
	           FROM flights
	           ORDER BY departure_time, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Flight
	for rows.Next() {
		var f model.Flight
		if err := rows.Scan(
			&f.ID, &f.FlightName, &f.Origin, &f.Destination,
			&f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
