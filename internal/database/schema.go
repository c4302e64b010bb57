package database

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all tables. Statements are idempotent so
// EnsureSchema can run on every startup. The UNIQUE KEY on
// booked_seats (seat_id, flight_id) is load-bearing: it is the only
// thing that prevents two concurrent bookings of the same seat from
// both committing.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		flight_name VARCHAR(64) NOT NULL,
		origin VARCHAR(128) NOT NULL,
		destination VARCHAR(128) NOT NULL,
		departure_time DATETIME NOT NULL,
		arrival_time DATETIME NOT NULL,
		price_cents INT UNSIGNED NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_flights_name (flight_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		flight_id BIGINT UNSIGNED NOT NULL,
		seat_name VARCHAR(16) NOT NULL,
		is_reserved TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_seats_flight_name (flight_id, seat_name),
		CONSTRAINT fk_seats_flight FOREIGN KEY (flight_id) REFERENCES flights (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS booked_seats (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		seat_id BIGINT UNSIGNED NOT NULL,
		flight_id BIGINT UNSIGNED NOT NULL,
		reference CHAR(36) NOT NULL,
		booked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_booked_seat_flight (seat_id, flight_id),
		CONSTRAINT fk_booked_seat FOREIGN KEY (seat_id) REFERENCES seats (id),
		CONSTRAINT fk_booked_flight FOREIGN KEY (flight_id) REFERENCES flights (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
