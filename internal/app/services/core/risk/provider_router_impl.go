package risk

import (
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
)

type providerRouter struct{}

func NewProviderRouter() contracts.ProviderRouter {
	return &providerRouter{}
}

// SelectRail translates the aggregator's recommendation into a concrete rail.
// The payment-type clause duplicates the aggregator's own crypto rule on
// purpose: it is the hard constraint guaranteeing a crypto-typed payment can
// never be routed to the card rail, whatever the recommendation says.
func (r *providerRouter) SelectRail(verdict models.ComplianceVerdict, request *models.PaymentRequest) models.RailKind {
	if verdict.RecommendedProvider == constvars.ProviderCoinbase || request.PaymentType == constvars.PaymentTypeCrypto {
		return models.RailCrypto
	}
	return models.RailCard
}
