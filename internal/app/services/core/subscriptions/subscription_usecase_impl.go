package subscriptions

import (
	"context"
	"time"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type subscriptionUsecase struct {
	SubscriptionRepository contracts.SubscriptionRepository
	AuditSink              contracts.AuditSink
	Log                    *zap.Logger
}

func NewSubscriptionUsecase(
	subscriptionRepository contracts.SubscriptionRepository,
	auditSink contracts.AuditSink,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	return &subscriptionUsecase{
		SubscriptionRepository: subscriptionRepository,
		AuditSink:              auditSink,
		Log:                    logger,
	}
}

// DemoActivate grants the user an active premium subscription for one billing
// period without a payment. Demo convenience only.
func (uc *subscriptionUsecase) DemoActivate(ctx context.Context, request *requests.DemoActivateRequest) (*responses.SubscriptionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.DemoActivate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
	)

	periodEnd := time.Now().UTC().AddDate(0, 0, constvars.SubscriptionPeriodInDays)
	subscription := &models.Subscription{
		UserID:           request.UserID,
		Plan:             constvars.SubscriptionPlanPremium,
		Status:           constvars.SubscriptionStatusActive,
		CurrentPeriodEnd: periodEnd,
	}

	updated, err := uc.SubscriptionRepository.UpsertActiveSubscription(ctx, subscription)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.DemoActivate error upserting subscription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Best-effort audit trail.
	_ = uc.AuditSink.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeSubscription,
		EntityID:   updated.ID,
		Action:     constvars.AuditActionActivated,
		Actor:      request.UserID,
	})

	return &responses.SubscriptionResponse{
		Status:           updated.Status,
		Plan:             updated.Plan,
		CurrentPeriodEnd: updated.CurrentPeriodEnd,
		Message:          "Subscription activated successfully",
	}, nil
}

// ActivateForUser flips the user's pending subscription to active after a
// confirmed payment. A missing pending subscription is not an error: the
// payment may not have been for a subscription at all.
func (uc *subscriptionUsecase) ActivateForUser(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.ActivateForUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, userID),
	)

	updated, err := uc.SubscriptionRepository.ActivatePendingByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.ActivateForUser error activating subscription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if updated == nil {
		uc.Log.Info("subscriptionUsecase.ActivateForUser no pending subscription for user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayerIDKey, userID),
		)
		return nil
	}

	_ = uc.AuditSink.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeSubscription,
		EntityID:   updated.ID,
		Action:     constvars.AuditActionActivated,
		Actor:      userID,
	})
	return nil
}
