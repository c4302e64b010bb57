package handler // handler defines http handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-booking/internal/status"
)

// statusBody is the status block carried by every response.  The code is
// serialized as a string to match the wire contract consumed by
// existing clients.
type statusBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// envelope is the uniform response shape: a status block plus an
// optional data payload.
type envelope struct {
	Status statusBody    `json:"status"`
	Body   *envelopeBody `json:"body,omitempty"`
}

type envelopeBody struct {
	Data any `json:"data"`
}

// respondOK writes a success envelope (code 100) with the given payload.
func respondOK(c echo.Context, data any) error {
	env := envelope{
		Status: statusBody{
			Code:    strconv.Itoa(int(status.Success)),
			Message: status.Success.Message(),
			Success: true,
		},
	}
	if data != nil {
		env.Body = &envelopeBody{Data: data}
	}
	return c.JSON(status.Success.HTTPStatus(), env)
}

// respondError translates a service error into the response envelope.
// Expected failures carry their transaction code and message from the
// taxonomy; anything else becomes an opaque 500 so internal error text
// never reaches the client.
func respondError(c echo.Context, err error) error {
	if code, ok := status.CodeOf(err); ok {
		return c.JSON(code.HTTPStatus(), envelope{
			Status: statusBody{
				Code:    strconv.Itoa(int(code)),
				Message: code.Message(),
				Success: false,
			},
		})
	}
	c.Logger().Errorf("internal error: %v", err)
	return c.JSON(500, envelope{
		Status: statusBody{Code: "500", Message: "Internal server error", Success: false},
	})
}
