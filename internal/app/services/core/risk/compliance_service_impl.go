package risk

import (
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
)

type complianceService struct {
	Entropy contracts.EntropySource
}

// NewComplianceService builds the risk-evaluation half of the decision
// engine. Not a singleton: tests construct several services with different
// entropy sources.
func NewComplianceService(entropy contracts.EntropySource) contracts.ComplianceService {
	return &complianceService{
		Entropy: entropy,
	}
}

// Evaluate runs every signal evaluator in fixed order and aggregates the
// results. The order of checks in the verdict equals evaluation order and is
// kept stable for the audit trail.
func (s *complianceService) Evaluate(request *models.PaymentRequest) models.ComplianceVerdict {
	checks := []models.RiskCheckResult{
		evaluateMerchantVerification(request),
		evaluateTransactionAmount(request),
		evaluatePaymentMethod(request),
		evaluateGeographicRisk(request, s.Entropy),
		evaluateAMLKYC(request, s.Entropy),
	}

	return aggregate(request, checks)
}

func aggregate(request *models.PaymentRequest, checks []models.RiskCheckResult) models.ComplianceVerdict {
	riskScore := 0
	hasFailure := false
	for _, check := range checks {
		riskScore += check.ScoreContribution
		if check.Status == models.RiskCheckFailed {
			hasFailure = true
		}
	}

	recommendedProvider := constvars.ProviderPrimer
	if request.PaymentType == constvars.PaymentTypeCrypto {
		recommendedProvider = constvars.ProviderCoinbase
	}
	if riskScore > constvars.RiskConservativeThreshold {
		// Conservative fallback. For crypto this re-selects coinbase, which
		// is redundant with the rule above; the overlap is intentional and
		// kept auditable rather than collapsed.
		if request.PaymentType == constvars.PaymentTypeCrypto {
			recommendedProvider = constvars.ProviderCoinbase
		} else {
			recommendedProvider = constvars.ProviderStripe
		}
	}

	return models.ComplianceVerdict{
		Passed:              !hasFailure && riskScore < constvars.RiskFailThreshold,
		RiskScore:           riskScore,
		Checks:              checks,
		RecommendedProvider: recommendedProvider,
	}
}
