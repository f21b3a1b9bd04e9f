package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifyPrimerWebhookSignature checks the X-Primer-Signature header, which
// carries the HMAC-SHA256 of the raw payload in "v1=<hex>" form.
func VerifyPrimerWebhookSignature(payload []byte, signature, secret string) bool {
	return verifyHMACSignature(payload, strings.TrimPrefix(signature, "v1="), secret)
}

// VerifyCoinbaseWebhookSignature checks the X-CC-Webhook-Signature header,
// which carries the HMAC-SHA256 of the raw payload as bare hex.
func VerifyCoinbaseWebhookSignature(payload []byte, signature, secret string) bool {
	return verifyHMACSignature(payload, signature, secret)
}

func verifyHMACSignature(payload []byte, signatureHex, secret string) bool {
	expected, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hmac.Equal(mac.Sum(nil), expected)
}
