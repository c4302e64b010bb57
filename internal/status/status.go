// Package status defines the closed set of transaction codes returned by
// the booking API.  Every caller-visible failure is expressed as one of
// these codes; services never invent ad hoc error text for outcomes the
// table covers.  Handlers translate a *BusinessError into the response
// envelope and HTTP status via the methods on TransactionCode.
package status

import (
	"errors"
	"net/http"
)

// TransactionCode is a stable numeric code identifying the outcome of an
// operation.  Codes are part of the public contract and must not change.
type TransactionCode int

const (
	Success             TransactionCode = 100
	FlightAlreadyExists TransactionCode = 101
	DateFormatError     TransactionCode = 102
	FlightNotFound      TransactionCode = 103
	SeatAlreadyExists   TransactionCode = 104
	SeatNotFound        TransactionCode = 105
	AlreadyBooked       TransactionCode = 106
	PaymentError        TransactionCode = 107
)

// Message returns the human-readable text for a code.  Unknown codes map
// to a generic message rather than leaking internals.
func (c TransactionCode) Message() string {
	switch c {
	case Success:
		return "Success"
	case FlightAlreadyExists:
		return "Flight already exists"
	case DateFormatError:
		return "Date format error. Format is dd-MM-yyyy HH:mm"
	case FlightNotFound:
		return "Flight not found"
	case SeatAlreadyExists:
		return "Seat already exists in the plane"
	case SeatNotFound:
		return "Seat not found"
	case AlreadyBooked:
		return "Seat already booked"
	case PaymentError:
		return "Payment error"
	}
	return "Unknown error"
}

// HTTPStatus maps a code onto its boundary status class.
func (c TransactionCode) HTTPStatus() int {
	switch c {
	case Success:
		return http.StatusOK
	case FlightAlreadyExists, DateFormatError, SeatAlreadyExists, AlreadyBooked:
		return http.StatusBadRequest
	case FlightNotFound, SeatNotFound:
		return http.StatusNotFound
	case PaymentError:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// BusinessError is an expected, caller-visible failure carrying a
// transaction code.  Unexpected faults (e.g. storage errors other than a
// duplicate booking) are returned as plain errors and surface as opaque
// internal errors instead.
type BusinessError struct {
	Code TransactionCode
}

// Error implements the error interface using the code's canonical message.
func (e *BusinessError) Error() string { return e.Code.Message() }

// Errorf wraps a transaction code in a BusinessError.
func Errorf(code TransactionCode) *BusinessError { return &BusinessError{Code: code} }

// CodeOf extracts the transaction code from an error chain.  The second
// return value reports whether the error is a BusinessError at all.
func CodeOf(err error) (TransactionCode, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return 0, false
}
