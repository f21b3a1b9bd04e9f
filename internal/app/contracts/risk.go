package contracts

import (
	"railpay-service/internal/app/models"
)

// EntropySource supplies the random draws consumed by the stubbed external
// risk-intelligence checks. Injected explicitly so evaluation is reproducible
// in tests given a seeded source; implementations must be safe for use from
// concurrent requests.
type EntropySource interface {
	// Next returns a draw in [0, 1).
	Next() float64
}

// ComplianceService is the risk-evaluation half of the decision engine: it
// runs every signal evaluator in fixed order and aggregates the results into
// a verdict. It never fails; a risky request yields a failing verdict, not an
// error.
type ComplianceService interface {
	Evaluate(request *models.PaymentRequest) models.ComplianceVerdict
}

// ProviderRouter enforces hard routing constraints on top of the aggregator's
// recommendation. Crypto-typed payments can never reach the card rail.
type ProviderRouter interface {
	SelectRail(verdict models.ComplianceVerdict, request *models.PaymentRequest) models.RailKind
}
