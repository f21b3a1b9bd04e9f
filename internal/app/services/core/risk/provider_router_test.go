package risk

import (
	"testing"

	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestProviderRouterSelectRail(t *testing.T) {
	router := NewProviderRouter()

	t.Run("Primer Recommendation Routes To Card Rail", func(t *testing.T) {
		verdict := models.ComplianceVerdict{RecommendedProvider: constvars.ProviderPrimer}
		request := &models.PaymentRequest{PaymentType: constvars.PaymentTypeCard}

		assert.Equal(t, models.RailCard, router.SelectRail(verdict, request))
	})

	t.Run("Stripe Recommendation Routes To Card Rail", func(t *testing.T) {
		verdict := models.ComplianceVerdict{RecommendedProvider: constvars.ProviderStripe}
		request := &models.PaymentRequest{PaymentType: constvars.PaymentTypeCard}

		assert.Equal(t, models.RailCard, router.SelectRail(verdict, request))
	})

	t.Run("Coinbase Recommendation Routes To Crypto Rail", func(t *testing.T) {
		verdict := models.ComplianceVerdict{RecommendedProvider: constvars.ProviderCoinbase}
		request := &models.PaymentRequest{PaymentType: constvars.PaymentTypeCard}

		assert.Equal(t, models.RailCrypto, router.SelectRail(verdict, request))
	})

	t.Run("Crypto Payment Type Overrides Card Recommendation", func(t *testing.T) {
		verdict := models.ComplianceVerdict{RecommendedProvider: constvars.ProviderPrimer}
		request := &models.PaymentRequest{PaymentType: constvars.PaymentTypeCrypto}

		assert.Equal(t, models.RailCrypto, router.SelectRail(verdict, request))
	})
}
