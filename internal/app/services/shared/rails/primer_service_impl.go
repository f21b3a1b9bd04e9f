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
	"railpay-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	primerServiceInstance contracts.CardRailService
	oncePrimerService     sync.Once
)

type primerService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Log     *zap.Logger
}

// NewPrimerService builds the live card rail adapter against the Primer
// payments API. The sandbox host is selected by PRIMER_ENV.
func NewPrimerService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.CardRailService {
	oncePrimerService.Do(func() {
		baseURL := constvars.PrimerProductionBaseURL
		if internalConfig.Rails.PrimerEnv == constvars.PrimerEnvSandbox {
			baseURL = constvars.PrimerSandboxBaseURL
		}
		instance := &primerService{
			BaseURL: baseURL,
			APIKey:  internalConfig.Rails.PrimerAPIKey,
			Client:  &http.Client{},
			Log:     logger,
		}
		primerServiceInstance = instance
	})
	return primerServiceInstance
}

type primerClientSessionPayload struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

type primerPaymentPayload struct {
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	PaymentMethodToken string `json:"paymentMethodToken,omitempty"`
	OrderID            string `json:"orderId"`
	CustomerID         string `json:"customerId"`
}

func (s *primerService) CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("primerService.CreateClientSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
	)

	payload := primerClientSessionPayload{
		Amount:     request.Amount,
		Currency:   request.Currency,
		OrderID:    utils.GenerateOrderID(),
		CustomerID: request.UserID,
	}

	var result struct {
		ClientToken string `json:"clientToken"`
	}
	if err := s.post(ctx, "/client-session", payload, &result); err != nil {
		s.Log.Error("primerService.CreateClientSession request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.ClientSessionResponse{ClientToken: result.ClientToken}, nil
}

func (s *primerService) Authorize(ctx context.Context, request *requests.CardAuthorizeRequest) (*responses.CardAuthorizeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("primerService.Authorize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int64(constvars.LoggingAmountKey, request.AmountMinorUnits),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
	)

	payload := primerPaymentPayload{
		Amount:             request.AmountMinorUnits,
		Currency:           request.Currency,
		PaymentMethodToken: request.PaymentMethodToken,
		OrderID:            utils.GenerateOrderID(),
		CustomerID:         request.PayerID,
	}

	result := new(responses.CardAuthorizeResponse)
	if err := s.post(ctx, "/payments", payload, result); err != nil {
		s.Log.Error("primerService.Authorize request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("primerService.Authorize completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderRefKey, result.ID),
		zap.String("payment_status", result.Status),
	)
	return result, nil
}

func (s *primerService) post(ctx context.Context, path string, payload, result interface{}) error {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal primer payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseURL+path, bytes.NewBuffer(requestJSON))
	if err != nil {
		return fmt.Errorf("build primer request: %w", err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send primer request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read primer response: %w", err)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.Unmarshal(bodyBytes, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = "unknown error"
		}
		return fmt.Errorf("Primer API error: %s", apiErr.Message)
	}

	return json.Unmarshal(bodyBytes, result)
}
