package webhook

import (
	"context"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type webhookUsecase struct {
	TransactionRepository contracts.TransactionRepository
	SubscriptionUsecase   contracts.SubscriptionUsecase
	Log                   *zap.Logger
}

func NewWebhookUsecase(
	transactionRepository contracts.TransactionRepository,
	subscriptionUsecase contracts.SubscriptionUsecase,
	logger *zap.Logger,
) contracts.WebhookUsecase {
	return &webhookUsecase{
		TransactionRepository: transactionRepository,
		SubscriptionUsecase:   subscriptionUsecase,
		Log:                   logger,
	}
}

// HandlePrimerEvent completes the transaction referenced by the captured
// payment and activates the payer's pending subscription. Events other than
// PAYMENT_CAPTURED are acknowledged without action.
func (uc *webhookUsecase) HandlePrimerEvent(ctx context.Context, event *requests.PrimerWebhookEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("webhookUsecase.HandlePrimerEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.EventType),
		zap.String(constvars.LoggingProviderRefKey, event.Data.ID),
	)

	if event.EventType != constvars.PrimerEventPaymentCaptured {
		return nil
	}

	transaction, err := uc.TransactionRepository.UpdateStatusByProviderRef(
		ctx, event.Data.ID, constvars.TransactionStatusCompleted, event.Data,
	)
	if err != nil {
		uc.Log.Error("webhookUsecase.HandlePrimerEvent error updating transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, event.Data.ID),
			zap.Error(err),
		)
		return err
	}
	if transaction == nil {
		uc.Log.Warn("webhookUsecase.HandlePrimerEvent no transaction for provider ref",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, event.Data.ID),
		)
		return nil
	}

	return uc.SubscriptionUsecase.ActivateForUser(ctx, transaction.UserID)
}

// HandleCoinbaseEvent completes the transaction referenced by the confirmed
// charge code and activates the subscription for the user carried in the
// charge metadata.
func (uc *webhookUsecase) HandleCoinbaseEvent(ctx context.Context, event *requests.CoinbaseWebhookEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("webhookUsecase.HandleCoinbaseEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event.Type),
		zap.String(constvars.LoggingProviderRefKey, event.Event.Data.Code),
	)

	if event.Event.Type != constvars.CoinbaseEventChargeConfirm {
		return nil
	}

	if _, err := uc.TransactionRepository.UpdateStatusByProviderRef(
		ctx, event.Event.Data.Code, constvars.TransactionStatusCompleted, event.Event.Data,
	); err != nil {
		uc.Log.Error("webhookUsecase.HandleCoinbaseEvent error updating transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, event.Event.Data.Code),
			zap.Error(err),
		)
		return err
	}

	userID := event.Event.Data.Metadata["user_id"]
	if userID == "" {
		uc.Log.Warn("webhookUsecase.HandleCoinbaseEvent charge metadata missing user_id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderRefKey, event.Event.Data.Code),
		)
		return nil
	}

	return uc.SubscriptionUsecase.ActivateForUser(ctx, userID)
}
