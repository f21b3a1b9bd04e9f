package risk

import (
	"testing"

	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noFlags yields entropy draws that keep both the geographic and AML checks
// quiet for one evaluation.
func noFlags() *sequenceEntropySource {
	return NewSequenceEntropySource(0, 0)
}

func TestComplianceServiceEvaluate(t *testing.T) {
	t.Run("Low Value Card Payment Passes Clean", func(t *testing.T) {
		service := NewComplianceService(noFlags())
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 2999,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCard,
		}

		verdict := service.Evaluate(request)

		assert.True(t, verdict.Passed)
		assert.Equal(t, 0, verdict.RiskScore)
		assert.Equal(t, constvars.ProviderPrimer, verdict.RecommendedProvider)
		require.Len(t, verdict.Checks, 5)
		for _, check := range verdict.Checks {
			assert.Equal(t, models.RiskCheckPassed, check.Status)
		}
	})

	t.Run("Crypto Payment Recommends Coinbase", func(t *testing.T) {
		service := NewComplianceService(noFlags())
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 2999,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCrypto,
		}

		verdict := service.Evaluate(request)

		assert.True(t, verdict.Passed)
		assert.Equal(t, constvars.RiskScoreCryptoPaymentMethod, verdict.RiskScore)
		assert.Equal(t, constvars.ProviderCoinbase, verdict.RecommendedProvider)
	})

	t.Run("High Value With Geo Flag Still Passes", func(t *testing.T) {
		service := NewComplianceService(NewSequenceEntropySource(0.9, 0))
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 15000,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCard,
		}

		verdict := service.Evaluate(request)

		assert.True(t, verdict.Passed)
		assert.Equal(t, 55, verdict.RiskScore)
		assert.Equal(t, constvars.ProviderPrimer, verdict.RecommendedProvider)
	})

	t.Run("AML Flag Fails The Gate Regardless Of Score", func(t *testing.T) {
		service := NewComplianceService(NewSequenceEntropySource(0, 0.99))
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 500,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCard,
		}

		verdict := service.Evaluate(request)

		assert.False(t, verdict.Passed)
		assert.Equal(t, constvars.RiskScoreAMLFlag, verdict.RiskScore)

		var amlCheck *models.RiskCheckResult
		for i := range verdict.Checks {
			if verdict.Checks[i].Name == constvars.RiskCheckAMLKYC {
				amlCheck = &verdict.Checks[i]
			}
		}
		require.NotNil(t, amlCheck)
		assert.Equal(t, models.RiskCheckFailed, amlCheck.Status)
	})

	t.Run("Check Order Is Stable For The Audit Trail", func(t *testing.T) {
		service := NewComplianceService(noFlags())
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 2999,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCard,
		}

		verdict := service.Evaluate(request)

		require.Len(t, verdict.Checks, 5)
		assert.Equal(t, constvars.RiskCheckMerchantVerification, verdict.Checks[0].Name)
		assert.Equal(t, constvars.RiskCheckTransactionAmount, verdict.Checks[1].Name)
		assert.Equal(t, constvars.RiskCheckPaymentMethod, verdict.Checks[2].Name)
		assert.Equal(t, constvars.RiskCheckGeographic, verdict.Checks[3].Name)
		assert.Equal(t, constvars.RiskCheckAMLKYC, verdict.Checks[4].Name)
	})

	t.Run("Same Draws Yield Identical Verdicts", func(t *testing.T) {
		entropy := NewSequenceEntropySource(0.85, 0.1)
		service := NewComplianceService(entropy)
		request := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 15000,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCrypto,
		}

		first := service.Evaluate(request)
		entropy.Reset()
		second := service.Evaluate(request)

		assert.Equal(t, first, second)
	})
}

func TestAggregate(t *testing.T) {
	cardRequest := &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 15000,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	}

	t.Run("Score Above Conservative Threshold Falls Back To Stripe", func(t *testing.T) {
		checks := []models.RiskCheckResult{
			{Name: constvars.RiskCheckHighValueTransaction, Status: models.RiskCheckWarning, ScoreContribution: 30},
			{Name: constvars.RiskCheckGeographic, Status: models.RiskCheckWarning, ScoreContribution: 25},
			{Name: "Velocity Check", Status: models.RiskCheckWarning, ScoreContribution: 30},
		}

		verdict := aggregate(cardRequest, checks)

		assert.Equal(t, 85, verdict.RiskScore)
		assert.False(t, verdict.Passed)
		assert.Equal(t, constvars.ProviderStripe, verdict.RecommendedProvider)
	})

	t.Run("Conservative Fallback Below Fail Threshold Still Passes", func(t *testing.T) {
		checks := []models.RiskCheckResult{
			{Name: constvars.RiskCheckHighValueTransaction, Status: models.RiskCheckWarning, ScoreContribution: 30},
			{Name: constvars.RiskCheckGeographic, Status: models.RiskCheckWarning, ScoreContribution: 25},
			{Name: "Velocity Check", Status: models.RiskCheckWarning, ScoreContribution: 10},
		}

		verdict := aggregate(cardRequest, checks)

		assert.Equal(t, 65, verdict.RiskScore)
		assert.True(t, verdict.Passed)
		assert.Equal(t, constvars.ProviderStripe, verdict.RecommendedProvider)
	})

	t.Run("Crypto Wins Over Conservative Fallback", func(t *testing.T) {
		cryptoRequest := &models.PaymentRequest{
			PayerID:          "user-1",
			AmountMinorUnits: 15000,
			Currency:         "USD",
			PaymentType:      constvars.PaymentTypeCrypto,
		}
		checks := []models.RiskCheckResult{
			{Name: constvars.RiskCheckHighValueTransaction, Status: models.RiskCheckWarning, ScoreContribution: 30},
			{Name: constvars.RiskCheckPaymentMethod, Status: models.RiskCheckWarning, ScoreContribution: 20},
			{Name: constvars.RiskCheckGeographic, Status: models.RiskCheckWarning, ScoreContribution: 25},
		}

		verdict := aggregate(cryptoRequest, checks)

		assert.Equal(t, 75, verdict.RiskScore)
		assert.Equal(t, constvars.ProviderCoinbase, verdict.RecommendedProvider)
	})

	t.Run("Any Failed Check Forces Rejection Independent Of Score", func(t *testing.T) {
		checks := []models.RiskCheckResult{
			{Name: constvars.RiskCheckMerchantVerification, Status: models.RiskCheckPassed},
			{Name: "Sanctions Screening", Status: models.RiskCheckFailed},
		}

		verdict := aggregate(cardRequest, checks)

		assert.Equal(t, 0, verdict.RiskScore)
		assert.False(t, verdict.Passed)
	})
}
