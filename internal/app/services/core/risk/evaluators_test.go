package risk

import (
	"testing"

	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateTransactionAmount(t *testing.T) {
	t.Run("Amount At Boundary Is Not High Value", func(t *testing.T) {
		request := &models.PaymentRequest{AmountMinorUnits: 10000, Currency: "USD", PaymentType: constvars.PaymentTypeCard}

		result := evaluateTransactionAmount(request)

		assert.Equal(t, constvars.RiskCheckTransactionAmount, result.Name)
		assert.Equal(t, models.RiskCheckPassed, result.Status)
		assert.Equal(t, 0, result.ScoreContribution)
		assert.Contains(t, result.Detail, "$100.00")
	})

	t.Run("Amount Above Boundary Is High Value", func(t *testing.T) {
		request := &models.PaymentRequest{AmountMinorUnits: 10001, Currency: "USD", PaymentType: constvars.PaymentTypeCard}

		result := evaluateTransactionAmount(request)

		assert.Equal(t, constvars.RiskCheckHighValueTransaction, result.Name)
		assert.Equal(t, models.RiskCheckWarning, result.Status)
		assert.Equal(t, constvars.RiskScoreHighValueTransaction, result.ScoreContribution)
		assert.Contains(t, result.Detail, "$100.01")
	})
}

func TestEvaluatePaymentMethod(t *testing.T) {
	t.Run("Crypto Requires Enhanced Monitoring", func(t *testing.T) {
		request := &models.PaymentRequest{AmountMinorUnits: 100, PaymentType: constvars.PaymentTypeCrypto}

		result := evaluatePaymentMethod(request)

		assert.Equal(t, models.RiskCheckWarning, result.Status)
		assert.Equal(t, constvars.RiskScoreCryptoPaymentMethod, result.ScoreContribution)
	})

	t.Run("Card Is Standard Low Risk", func(t *testing.T) {
		request := &models.PaymentRequest{AmountMinorUnits: 100, PaymentType: constvars.PaymentTypeCard}

		result := evaluatePaymentMethod(request)

		assert.Equal(t, models.RiskCheckPassed, result.Status)
		assert.Equal(t, 0, result.ScoreContribution)
	})
}

func TestEvaluateGeographicRisk(t *testing.T) {
	request := &models.PaymentRequest{AmountMinorUnits: 100, PaymentType: constvars.PaymentTypeCard}

	t.Run("Draw At Threshold Flags", func(t *testing.T) {
		result := evaluateGeographicRisk(request, NewSequenceEntropySource(0.8))

		assert.Equal(t, models.RiskCheckWarning, result.Status)
		assert.Equal(t, constvars.RiskScoreGeographicFlag, result.ScoreContribution)
	})

	t.Run("Draw Below Threshold Passes", func(t *testing.T) {
		result := evaluateGeographicRisk(request, NewSequenceEntropySource(0.79))

		assert.Equal(t, models.RiskCheckPassed, result.Status)
		assert.Equal(t, 0, result.ScoreContribution)
	})
}

func TestEvaluateAMLKYC(t *testing.T) {
	request := &models.PaymentRequest{AmountMinorUnits: 100, PaymentType: constvars.PaymentTypeCard}

	t.Run("Draw At Threshold Fails The Check", func(t *testing.T) {
		result := evaluateAMLKYC(request, NewSequenceEntropySource(0.95))

		assert.Equal(t, models.RiskCheckFailed, result.Status)
		assert.Equal(t, constvars.RiskScoreAMLFlag, result.ScoreContribution)
	})

	t.Run("Draw Below Threshold Passes", func(t *testing.T) {
		result := evaluateAMLKYC(request, NewSequenceEntropySource(0.94))

		assert.Equal(t, models.RiskCheckPassed, result.Status)
		assert.Equal(t, 0, result.ScoreContribution)
	})
}
