package status

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	cases := map[TransactionCode]string{
		Success:             "Success",
		FlightAlreadyExists: "Flight already exists",
		DateFormatError:     "Date format error. Format is dd-MM-yyyy HH:mm",
		FlightNotFound:      "Flight not found",
		SeatAlreadyExists:   "Seat already exists in the plane",
		SeatNotFound:        "Seat not found",
		AlreadyBooked:       "Seat already booked",
		PaymentError:        "Payment error",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.Message(), "code %d", code)
	}
	assert.Equal(t, "Unknown error", TransactionCode(999).Message())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, Success.HTTPStatus())
	for _, c := range []TransactionCode{FlightAlreadyExists, DateFormatError, SeatAlreadyExists, AlreadyBooked} {
		assert.Equal(t, http.StatusBadRequest, c.HTTPStatus(), "code %d", c)
	}
	for _, c := range []TransactionCode{FlightNotFound, SeatNotFound} {
		assert.Equal(t, http.StatusNotFound, c.HTTPStatus(), "code %d", c)
	}
	assert.Equal(t, http.StatusInternalServerError, PaymentError.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, TransactionCode(999).HTTPStatus())
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(Errorf(AlreadyBooked))
	assert.True(t, ok)
	assert.Equal(t, AlreadyBooked, code)

	// Codes survive wrapping.
	code, ok = CodeOf(fmt.Errorf("booking seat: %w", Errorf(PaymentError)))
	assert.True(t, ok)
	assert.Equal(t, PaymentError, code)

	_, ok = CodeOf(errors.New("disk full"))
	assert.False(t, ok)
	_, ok = CodeOf(nil)
	assert.False(t, ok)
}

func TestBusinessErrorText(t *testing.T) {
	assert.EqualError(t, Errorf(SeatNotFound), "Seat not found")
}
