package rails

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"railpay-service/internal/app/config"
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	coinbaseServiceInstance contracts.CryptoRailService
	onceCoinbaseService     sync.Once
)

type coinbaseService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Log     *zap.Logger
}

// NewCoinbaseService builds the live crypto rail adapter against the Coinbase
// Commerce charges API.
func NewCoinbaseService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.CryptoRailService {
	onceCoinbaseService.Do(func() {
		instance := &coinbaseService{
			BaseURL: constvars.CoinbaseCommerceBaseURL,
			APIKey:  internalConfig.Rails.CoinbaseAPIKey,
			Client:  &http.Client{},
			Log:     logger,
		}
		coinbaseServiceInstance = instance
	})
	return coinbaseServiceInstance
}

type coinbaseChargePayload struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	PricingType string              `json:"pricing_type"`
	LocalPrice  coinbaseLocalPrice  `json:"local_price"`
	Metadata    map[string]string   `json:"metadata"`
}

type coinbaseLocalPrice struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (s *coinbaseService) CreateCharge(ctx context.Context, request *requests.CryptoChargeRequest) (*responses.CryptoChargeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("coinbaseService.CreateCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int64(constvars.LoggingAmountKey, request.AmountMinorUnits),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
	)

	plan := request.Plan
	if plan == "" {
		plan = constvars.SubscriptionPlanPremium
	}

	payload := coinbaseChargePayload{
		Name:        fmt.Sprintf("%s Subscription", plan),
		Description: fmt.Sprintf("Payment for %s subscription", plan),
		PricingType: "fixed_price",
		LocalPrice: coinbaseLocalPrice{
			Amount:   fmt.Sprintf("%.2f", float64(request.AmountMinorUnits)/100),
			Currency: request.Currency,
		},
		Metadata: map[string]string{
			"user_id": request.PayerID,
			"plan":    plan,
		},
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal coinbase payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseURL+"/charges", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, fmt.Errorf("build coinbase request: %w", err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.APIKey)
	req.Header.Set(constvars.CoinbaseHeaderAPIVersion, constvars.CoinbaseCommerceAPIVersion)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("coinbaseService.CreateCharge request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("send coinbase request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read coinbase response: %w", err)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		json.Unmarshal(bodyBytes, &apiErr)
		if apiErr.Error.Message == "" {
			apiErr.Error.Message = "unknown error"
		}
		return nil, fmt.Errorf("Coinbase Commerce API error: %s", apiErr.Error.Message)
	}

	var result struct {
		Data struct {
			ID        string `json:"id"`
			HostedURL string `json:"hosted_url"`
			Code      string `json:"code"`
		} `json:"data"`
	}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal coinbase response: %w", err)
	}

	s.Log.Info("coinbaseService.CreateCharge completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderRefKey, result.Data.Code),
	)
	return &responses.CryptoChargeResponse{
		ChargeID:  result.Data.ID,
		HostedURL: result.Data.HostedURL,
		Code:      result.Data.Code,
	}, nil
}
