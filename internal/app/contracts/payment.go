package contracts

import (
	"context"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
)

// PaymentUsecase is the payment orchestrator: evaluation, gating, routing,
// execution and result assembly for one request.
type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, request *models.PaymentRequest) (*models.PaymentOutcome, error)
	CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error)
	CreateCardPayment(ctx context.Context, request *requests.CreateCardPaymentRequest) (*responses.CardAuthorizeResponse, error)
	CreateCryptoCharge(ctx context.Context, request *requests.CreateCryptoChargeRequest) (*responses.CryptoChargeResponse, error)
}
