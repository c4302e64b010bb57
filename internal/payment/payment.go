// Package payment defines the charge gateway consumed by the booking
// service and an HTTP adapter to an external payment provider.  A
// charge is a discriminated result (approved, declined, error) rather
// than a boolean so the caller's mapping to the payment-error
// transaction code is total: declined, errored and timed-out charges
// are all distinguishable from an approval.
package payment

import (
	"context"
	"errors"
)

// ChargeStatus is the provider's verdict on a charge attempt.
type ChargeStatus string

const (
	StatusApproved ChargeStatus = "approved"
	StatusDeclined ChargeStatus = "declined"
)

// ChargeResult carries the outcome of a completed charge call.  The
// Reference identifies the charge at the provider and is required to
// issue a refund.
type ChargeResult struct {
	Status    ChargeStatus
	Reference string
}

// ErrGatewayTimeout is returned when the provider does not answer
// within the gateway's own deadline.  The charge may or may not have
// gone through on the provider side; callers must not book against it.
var ErrGatewayTimeout = errors.New("payment gateway timeout")

// Gateway is the consumed payment interface.  Charge blocks until the
// provider answers or the deadline passes; it must never return an
// approved result for a charge that did not complete.  Refund reverses
// a previously approved charge by its reference.
type Gateway interface {
	Charge(ctx context.Context, amountCents uint32) (*ChargeResult, error)
	Refund(ctx context.Context, reference string) error
}
