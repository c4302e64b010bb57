// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// booking service to distinguish between different failure scenarios
// without parsing driver error text. ErrSeatTaken in particular is the
// signal that the ledger's uniqueness constraint rejected an insert,
// which the booking coordinator must tell apart from every other
// storage fault.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrFlightNotFound is returned when a flight lookup yields no rows.
var ErrFlightNotFound = errors.New("flight not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrFlightExists is returned when creating a flight whose name is
// already taken.
var ErrFlightExists = errors.New("flight already exists")

// ErrSeatExists is returned when adding a seat whose name already
// exists on the same flight.
var ErrSeatExists = errors.New("seat already exists")

// ErrSeatTaken is returned when inserting a booking record for a
// (seat, flight) pair that already has one. It is the expected outcome
// for the loser of a booking race and must never be conflated with
// other storage errors.
var ErrSeatTaken = errors.New("seat already booked")

// mysqlDuplicateEntry is the server error number MySQL reports when an
// insert or update violates a unique key.
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique-constraint violation.
// The check inspects the driver's typed error rather than message text.
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
