package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentOption(t *testing.T) {
	p, err := ParsePaymentOption("COD")
	require.NoError(t, err)
	assert.Equal(t, PaymentCOD, p)

	p, err = ParsePaymentOption("Online")
	require.NoError(t, err)
	assert.Equal(t, PaymentOnline, p)

	_, err = ParsePaymentOption("cod")
	assert.Error(t, err)
	_, err = ParsePaymentOption("")
	assert.Error(t, err)
}

func TestCartLine_Subtotal(t *testing.T) {
	l := CartLine{Product: Product{OfferPrice: 40.5}, Quantity: 3}
	assert.Equal(t, 121.5, l.Subtotal())
}

func TestAddress_DisplayLine(t *testing.T) {
	a := Address{Street: "12 MG Road", City: "Pune", State: "MH", Country: "India"}
	assert.Equal(t, "12 MG Road, Pune, MH, India", a.DisplayLine())
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("empty cart")
	assert.Equal(t, "empty cart", err.Error())
}

func TestRemoteError_KeepsServerMessage(t *testing.T) {
	err := &RemoteError{Service: "order", Message: "Insufficient stock"}
	assert.Contains(t, err.Error(), "Insufficient stock")
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Service: "order", Err: cause}
	assert.True(t, errors.Is(err, cause))
}
