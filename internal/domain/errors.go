package domain

import (
	"errors"
	"fmt"
)

// Checkout error taxonomy. Every failure is recoverable: the submitter
// returns to idle with cart and address state intact.

// ValidationError is a locally detected precondition failure (no address,
// empty cart). It is never sent to a server and is fixed by user action.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// RemoteError is a well-formed negative response from a downstream service.
// Message is server-supplied and surfaced verbatim.
type RemoteError struct {
	Service string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
	return e.Message
}

// TransportError is a network or decoding failure talking to a downstream
// service. The message shown to the shopper is generic.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s unreachable: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

var (
	// ErrSubmitInFlight rejects a submit request while another submission
	// is still being validated or sent.
	ErrSubmitInFlight = errors.New("order submission already in progress")

	// ErrOnlineNotSupported marks the online payment path as deliberately
	// unimplemented, distinguishable from any failure.
	ErrOnlineNotSupported = errors.New("online payment is not supported yet")
)
