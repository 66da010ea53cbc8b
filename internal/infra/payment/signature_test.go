//go:build unit

package payment_test

import (
	"testing"

	"roomly/internal/infra/payment"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event_type":"checkout.completed","booking_id":"b1"}`)

	t.Run("accepts a signature over the exact bytes", func(t *testing.T) {
		sig := payment.SignPayload(body, secret)
		assert.True(t, payment.VerifySignature(body, sig, secret))
	})

	t.Run("rejects a signature with the wrong secret", func(t *testing.T) {
		sig := payment.SignPayload(body, "other_secret")
		assert.False(t, payment.VerifySignature(body, sig, secret))
	})

	t.Run("rejects when the body was tampered with", func(t *testing.T) {
		sig := payment.SignPayload(body, secret)
		tampered := append([]byte{}, body...)
		tampered[0] = '['
		assert.False(t, payment.VerifySignature(tampered, sig, secret))
	})

	t.Run("rejects non-hex signatures", func(t *testing.T) {
		assert.False(t, payment.VerifySignature(body, "not-hex!", secret))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.False(t, payment.VerifySignature(body, "", secret))
	})
}
