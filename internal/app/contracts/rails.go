package contracts

import (
	"context"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
)

// CardRailService is the card-network processor adapter (Primer).
type CardRailService interface {
	CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error)
	Authorize(ctx context.Context, request *requests.CardAuthorizeRequest) (*responses.CardAuthorizeResponse, error)
}

// CryptoRailService is the cryptocurrency settlement processor adapter
// (Coinbase Commerce).
type CryptoRailService interface {
	CreateCharge(ctx context.Context, request *requests.CryptoChargeRequest) (*responses.CryptoChargeResponse, error)
}
