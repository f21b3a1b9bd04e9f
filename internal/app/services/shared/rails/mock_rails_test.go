package rails

import (
	"context"
	"strings"
	"testing"

	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMockPrimerServiceAuthorize(t *testing.T) {
	service := NewMockPrimerService(zap.NewNop())

	response, err := service.Authorize(context.Background(), &requests.CardAuthorizeRequest{
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PayerID:          "user-1",
	})

	require.NoError(t, err)
	assert.True(t, response.Mock)
	assert.Equal(t, constvars.PrimerStatusAuthorized, response.Status)
	assert.Equal(t, int64(2999), response.Amount)
	assert.Equal(t, "USD", response.Currency)
	assert.True(t, strings.HasPrefix(response.ID, constvars.MockPaymentRefPrefix))
}

func TestMockCoinbaseServiceCreateCharge(t *testing.T) {
	service := NewMockCoinbaseService(zap.NewNop())

	response, err := service.CreateCharge(context.Background(), &requests.CryptoChargeRequest{
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PayerID:          "user-1",
	})

	require.NoError(t, err)
	assert.True(t, response.Mock)
	assert.True(t, strings.HasPrefix(response.ChargeID, constvars.MockChargeRefPrefix))
	assert.True(t, strings.HasPrefix(response.Code, constvars.MockChargeCodePrefix))
	assert.Len(t, response.Code, len(constvars.MockChargeCodePrefix)+constvars.MockChargeCodeLength)
	assert.Contains(t, response.HostedURL, response.Code)
}
