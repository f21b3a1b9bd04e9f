package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log             *zap.Logger
	PaymentUsecase  contracts.PaymentUsecase
	RedisRepository contracts.RedisRepository
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, redisRepository contracts.RedisRepository) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:             logger,
			PaymentUsecase:  paymentUsecase,
			RedisRepository: redisRepository,
		}
	})
	return paymentControllerInstance
}

// ProcessCompliancePayment handles POST /payments/compliance: the orchestrated
// flow that runs the decision engine before any rail is touched. Repeated
// requests carrying the same X-Idempotency-Key are rejected while the key is
// held in Redis.
func (ctrl *PaymentController) ProcessCompliancePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CompliancePaymentRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if idempotencyKey := r.Header.Get(constvars.HeaderXIdempotencyKey); idempotencyKey != "" {
		redisKey := constvars.IdempotencyKeyPrefix + idempotencyKey
		ttl := time.Duration(constvars.IdempotencyKeyTTLInMinute) * time.Minute
		acquired, err := ctrl.RedisRepository.TrySetNX(r.Context(), redisKey, requestID, ttl)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		if !acquired {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDuplicateIdempotencyKey(
				fmt.Errorf("idempotency key %s already held", idempotencyKey),
			))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	outcome, err := ctrl.PaymentUsecase.ProcessPayment(ctx, &models.PaymentRequest{
		PayerID:          request.UserID,
		AmountMinorUnits: request.Amount,
		Currency:         defaultCurrency(request.Currency),
		PaymentType:      constvars.PaymentType(request.PaymentType),
		PaymentToken:     request.PaymentMethodToken,
	})
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if !outcome.Success {
		code := constvars.StatusUnprocessableEntity
		if outcome.ErrorKind == models.ErrorKindRailError {
			code = constvars.StatusBadGateway
		}
		ctrl.Log.Warn("Payment terminated without success",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("error_kind", string(outcome.ErrorKind)),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
		utils.BuildFailureResponse(w, code, outcome.ErrorDetail, outcome)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "compliance_payment_completed", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentProcessedSuccessMessage, outcome)
}

// CreateClientSession handles POST /payments/primer/client-session.
func (ctrl *PaymentController) CreateClientSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.ClientSessionRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.Currency = defaultCurrency(request.Currency)

	response, err := ctrl.PaymentUsecase.CreateClientSession(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "client_session_created", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.Bool("mock", response.Mock),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClientSessionCreatedSuccessMessage, response)
}

// CreateCardPayment handles POST /payments/primer/create-payment: the direct
// card authorization that bypasses the decision engine.
func (ctrl *PaymentController) CreateCardPayment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateCardPaymentRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.Currency = defaultCurrency(request.Currency)

	response, err := ctrl.PaymentUsecase.CreateCardPayment(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "card_payment_created", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.String(constvars.LoggingProviderRefKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CardPaymentCreatedSuccessMessage, response)
}

// CreateCryptoCharge handles POST /payments/crypto/charge.
func (ctrl *PaymentController) CreateCryptoCharge(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateCryptoChargeRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.Currency = defaultCurrency(request.Currency)

	response, err := ctrl.PaymentUsecase.CreateCryptoCharge(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "crypto_charge_created", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.String(constvars.LoggingProviderRefKey, response.Code),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CryptoChargeCreatedSuccessMessage, response)
}

func defaultCurrency(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}
