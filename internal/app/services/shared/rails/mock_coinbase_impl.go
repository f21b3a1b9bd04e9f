package rails

import (
	"context"
	"fmt"
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const mockCoinbaseHint = "Using mock Coinbase Commerce response - set COINBASE_COMMERCE_API_KEY environment variable for real integration"

type mockCoinbaseService struct {
	Log *zap.Logger
}

// NewMockCoinbaseService builds the stub crypto rail used when no Coinbase
// Commerce credentials are configured.
func NewMockCoinbaseService(logger *zap.Logger) contracts.CryptoRailService {
	return &mockCoinbaseService{
		Log: logger,
	}
}

func (s *mockCoinbaseService) CreateCharge(ctx context.Context, request *requests.CryptoChargeRequest) (*responses.CryptoChargeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("mockCoinbaseService.CreateCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int64(constvars.LoggingAmountKey, request.AmountMinorUnits),
	)

	code, err := utils.GenerateMockChargeCode(constvars.MockChargeCodePrefix, constvars.MockChargeCodeLength)
	if err != nil {
		return nil, err
	}

	return &responses.CryptoChargeResponse{
		ChargeID:  utils.GenerateMockProviderRef(constvars.MockChargeRefPrefix),
		HostedURL: fmt.Sprintf(constvars.CoinbaseHostedChargeURLFormat, code),
		Code:      code,
		Mock:      true,
		Message:   mockCoinbaseHint,
	}, nil
}
