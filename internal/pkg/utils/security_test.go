package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signHex(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPrimerWebhookSignature(t *testing.T) {
	payload := []byte(`{"eventType":"PAYMENT_CAPTURED","data":{"id":"pay-1"}}`)
	secret := "primer-secret"

	t.Run("accepts v1-prefixed signature", func(t *testing.T) {
		assert.True(t, VerifyPrimerWebhookSignature(payload, "v1="+signHex(payload, secret), secret))
	})

	t.Run("accepts bare hex signature", func(t *testing.T) {
		assert.True(t, VerifyPrimerWebhookSignature(payload, signHex(payload, secret), secret))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		assert.False(t, VerifyPrimerWebhookSignature(payload, "v1="+signHex(payload, "other"), secret))
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		signature := "v1=" + signHex(payload, secret)
		assert.False(t, VerifyPrimerWebhookSignature([]byte(`{"eventType":"PAYMENT_FAILED"}`), signature, secret))
	})

	t.Run("rejects non-hex signature", func(t *testing.T) {
		assert.False(t, VerifyPrimerWebhookSignature(payload, "v1=not-hex", secret))
	})
}

func TestVerifyCoinbaseWebhookSignature(t *testing.T) {
	payload := []byte(`{"event":{"type":"charge:confirmed","data":{"code":"CODE1"}}}`)
	secret := "coinbase-secret"

	t.Run("accepts valid signature", func(t *testing.T) {
		assert.True(t, VerifyCoinbaseWebhookSignature(payload, signHex(payload, secret), secret))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		assert.False(t, VerifyCoinbaseWebhookSignature(payload, signHex(payload, "other"), secret))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.False(t, VerifyCoinbaseWebhookSignature(payload, "", secret))
	})
}
