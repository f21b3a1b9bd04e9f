package rails

import (
	"context"
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const mockPrimerHint = "Using mock Primer response - set PRIMER_API_KEY environment variable for real integration"

type mockPrimerService struct {
	Log *zap.Logger
}

// NewMockPrimerService builds the stub card rail used when no Primer
// credentials are configured. Every authorization succeeds.
func NewMockPrimerService(logger *zap.Logger) contracts.CardRailService {
	return &mockPrimerService{
		Log: logger,
	}
}

func (s *mockPrimerService) CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("mockPrimerService.CreateClientSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
	)

	return &responses.ClientSessionResponse{
		ClientToken: utils.GenerateMockProviderRef("mock_client_token"),
		Mock:        true,
		Message:     mockPrimerHint,
	}, nil
}

func (s *mockPrimerService) Authorize(ctx context.Context, request *requests.CardAuthorizeRequest) (*responses.CardAuthorizeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("mockPrimerService.Authorize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int64(constvars.LoggingAmountKey, request.AmountMinorUnits),
	)

	return &responses.CardAuthorizeResponse{
		ID:       utils.GenerateMockProviderRef(constvars.MockPaymentRefPrefix),
		Status:   constvars.PrimerStatusAuthorized,
		Amount:   request.AmountMinorUnits,
		Currency: request.Currency,
		Mock:     true,
		Message:  mockPrimerHint,
	}, nil
}
