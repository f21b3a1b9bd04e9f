package payments

import (
	"context"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	ComplianceService     contracts.ComplianceService
	ProviderRouter        contracts.ProviderRouter
	CardRail              contracts.CardRailService
	CryptoRail            contracts.CryptoRailService
	AuditSink             contracts.AuditSink
	TransactionRepository contracts.TransactionRepository
	SubscriptionUsecase   contracts.SubscriptionUsecase
	Log                   *zap.Logger
}

// NewPaymentUsecase wires the orchestrator. Plain constructor: tests build
// several instances against different rails and entropy sources.
func NewPaymentUsecase(
	complianceService contracts.ComplianceService,
	providerRouter contracts.ProviderRouter,
	cardRail contracts.CardRailService,
	cryptoRail contracts.CryptoRailService,
	auditSink contracts.AuditSink,
	transactionRepository contracts.TransactionRepository,
	subscriptionUsecase contracts.SubscriptionUsecase,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		ComplianceService:     complianceService,
		ProviderRouter:        providerRouter,
		CardRail:              cardRail,
		CryptoRail:            cryptoRail,
		AuditSink:             auditSink,
		TransactionRepository: transactionRepository,
		SubscriptionUsecase:   subscriptionUsecase,
		Log:                   logger,
	}
}

// ProcessPayment runs the full decision engine for one request: evaluate,
// record, gate, route, execute. Terminal failures (compliance rejection, rail
// error) come back inside the outcome, not as an error; the error return is
// reserved for the orchestrator itself being unable to run.
func (uc *paymentUsecase) ProcessPayment(ctx context.Context, request *models.PaymentRequest) (*models.PaymentOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ProcessPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int64(constvars.LoggingAmountKey, request.AmountMinorUnits),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
		zap.String(constvars.LoggingPaymentTypeKey, string(request.PaymentType)),
	)

	verdict := uc.ComplianceService.Evaluate(request)

	utils.LogBusinessEvent(uc.Log, "compliance_check", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.Int(constvars.LoggingRiskScoreKey, verdict.RiskScore),
		zap.Bool(constvars.LoggingSuccessKey, verdict.Passed),
	)

	// The audit trail write is best-effort: a sink failure never blocks the
	// payment decision.
	_ = uc.AuditSink.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeComplianceCheck,
		EntityID:   request.PayerID,
		Action:     constvars.AuditActionComplianceCheckPerformed,
		Payload: map[string]interface{}{
			"riskScore": verdict.RiskScore,
			"passed":    verdict.Passed,
			"checks":    verdict.Checks,
			"paymentData": map[string]interface{}{
				"amount":   request.AmountMinorUnits,
				"currency": request.Currency,
				"type":     request.PaymentType,
			},
		},
		Actor: request.PayerID,
	})

	if !verdict.Passed {
		uc.Log.Warn("paymentUsecase.ProcessPayment compliance gate rejected payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayerIDKey, request.PayerID),
			zap.Int(constvars.LoggingRiskScoreKey, verdict.RiskScore),
		)
		return &models.PaymentOutcome{
			Success:     false,
			Verdict:     verdict,
			ErrorKind:   models.ErrorKindComplianceRejected,
			ErrorDetail: constvars.ErrClientComplianceRejected,
		}, nil
	}

	rail := uc.ProviderRouter.SelectRail(verdict, request)

	var (
		railResult *models.RailResult
		railErr    error
	)
	switch rail {
	case models.RailCrypto:
		railResult, railErr = uc.executeCryptoRail(ctx, request)
	default:
		railResult, railErr = uc.executeCardRail(ctx, request)
	}
	if railErr != nil {
		uc.Log.Error("paymentUsecase.ProcessPayment rail execution failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayerIDKey, request.PayerID),
			zap.String("rail", string(rail)),
			zap.Error(railErr),
		)
		return &models.PaymentOutcome{
			Success:     false,
			Verdict:     verdict,
			ErrorKind:   models.ErrorKindRailError,
			ErrorDetail: errorDetail(railErr),
		}, nil
	}

	// Ledger write is best-effort here too: the rail already moved money, so
	// the caller gets a success regardless.
	if _, err := uc.TransactionRepository.CreateTransaction(ctx, &models.Transaction{
		UserID:      request.PayerID,
		Provider:    railResult.Provider,
		ProviderRef: railResult.ProviderRef,
		AmountCents: request.AmountMinorUnits,
		Currency:    request.Currency,
		Status:      constvars.TransactionStatusCompleted,
		Raw: map[string]interface{}{
			"paymentResult":    railResult,
			"complianceResult": verdict,
		},
	}); err != nil {
		uc.Log.Error("paymentUsecase.ProcessPayment error persisting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, railResult.ProviderRef),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "payment_processed", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.PayerID),
		zap.String(constvars.LoggingProviderKey, string(railResult.Provider)),
		zap.String(constvars.LoggingProviderRefKey, railResult.ProviderRef),
	)

	return &models.PaymentOutcome{
		Success:    true,
		Verdict:    verdict,
		RailResult: railResult,
	}, nil
}

func (uc *paymentUsecase) executeCardRail(ctx context.Context, request *models.PaymentRequest) (*models.RailResult, error) {
	response, err := uc.CardRail.Authorize(ctx, &requests.CardAuthorizeRequest{
		AmountMinorUnits:   request.AmountMinorUnits,
		Currency:           request.Currency,
		PayerID:            request.PayerID,
		PaymentMethodToken: request.PaymentToken,
	})
	if err != nil {
		return nil, err
	}
	return &models.RailResult{
		Provider:    constvars.ProviderPrimer,
		ProviderRef: response.ID,
		Status:      response.Status,
		Mock:        response.Mock,
		Raw:         response,
	}, nil
}

func (uc *paymentUsecase) executeCryptoRail(ctx context.Context, request *models.PaymentRequest) (*models.RailResult, error) {
	response, err := uc.CryptoRail.CreateCharge(ctx, &requests.CryptoChargeRequest{
		AmountMinorUnits: request.AmountMinorUnits,
		Currency:         request.Currency,
		PayerID:          request.PayerID,
		Plan:             constvars.SubscriptionPlanPremium,
	})
	if err != nil {
		return nil, err
	}
	return &models.RailResult{
		Provider:    constvars.ProviderCoinbase,
		ProviderRef: response.ChargeID,
		Status:      constvars.TransactionStatusPending,
		HostedURL:   response.HostedURL,
		Code:        response.Code,
		Mock:        response.Mock,
		Raw:         response,
	}, nil
}

// CreateClientSession is the direct card rail pass-through used by the
// frontend to initialize its checkout widget.
func (uc *paymentUsecase) CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateClientSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
	)
	return uc.CardRail.CreateClientSession(ctx, request)
}

// CreateCardPayment authorizes a card payment directly, bypassing the
// decision engine, and records the completed transaction. Mock payments also
// activate any pending subscription immediately since no webhook will arrive.
func (uc *paymentUsecase) CreateCardPayment(ctx context.Context, request *requests.CreateCardPaymentRequest) (*responses.CardAuthorizeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCardPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)

	response, err := uc.CardRail.Authorize(ctx, &requests.CardAuthorizeRequest{
		AmountMinorUnits:   request.Amount,
		Currency:           request.Currency,
		PayerID:            request.UserID,
		PaymentMethodToken: request.PaymentMethodToken,
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.TransactionRepository.CreateTransaction(ctx, &models.Transaction{
		UserID:      request.UserID,
		Provider:    constvars.ProviderPrimer,
		ProviderRef: response.ID,
		AmountCents: request.Amount,
		Currency:    request.Currency,
		Status:      constvars.TransactionStatusCompleted,
		Raw:         response,
	}); err != nil {
		uc.Log.Error("paymentUsecase.CreateCardPayment error persisting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, response.ID),
			zap.Error(err),
		)
	}

	if response.Mock {
		if err := uc.SubscriptionUsecase.ActivateForUser(ctx, request.UserID); err != nil {
			uc.Log.Error("paymentUsecase.CreateCardPayment error activating subscription for mock payment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPayerIDKey, request.UserID),
				zap.Error(err),
			)
		}
	}

	return response, nil
}

// CreateCryptoCharge creates a Coinbase Commerce charge directly and records
// a pending transaction keyed by the charge code, which the confirmation
// webhook later flips to completed.
func (uc *paymentUsecase) CreateCryptoCharge(ctx context.Context, request *requests.CreateCryptoChargeRequest) (*responses.CryptoChargeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCryptoCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)

	plan := request.Plan
	if plan == "" {
		plan = constvars.SubscriptionPlanPremium
	}

	response, err := uc.CryptoRail.CreateCharge(ctx, &requests.CryptoChargeRequest{
		AmountMinorUnits: request.Amount,
		Currency:         request.Currency,
		PayerID:          request.UserID,
		Plan:             plan,
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.TransactionRepository.CreateTransaction(ctx, &models.Transaction{
		UserID:      request.UserID,
		Provider:    constvars.ProviderCoinbase,
		ProviderRef: response.Code,
		AmountCents: request.Amount,
		Currency:    request.Currency,
		Status:      constvars.TransactionStatusPending,
		Raw:         response,
	}); err != nil {
		uc.Log.Error("paymentUsecase.CreateCryptoCharge error persisting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, response.Code),
			zap.Error(err),
		)
	}

	return response, nil
}

func errorDetail(err error) string {
	if customErr, ok := err.(*exceptions.CustomError); ok {
		return customErr.DevMessage
	}
	return err.Error()
}
