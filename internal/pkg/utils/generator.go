package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateOrderID() string {
	return fmt.Sprintf("order_%d", time.Now().UnixMilli())
}

// GenerateMockProviderRef builds references like mock_payment_1700000000000_a1b2c3d4,
// matching what the sandbox rails hand back.
func GenerateMockProviderRef(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}

// GenerateMockChargeCode builds short uppercase alphanumeric codes used by the
// mock crypto rail as hosted-checkout identifiers.
func GenerateMockChargeCode(prefix string, length int) (string, error) {
	const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	max := big.NewInt(int64(len(codeAlphabet)))

	code := make([]byte, length)
	for i := range code {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[num.Int64()]
	}

	return prefix + string(code), nil
}
