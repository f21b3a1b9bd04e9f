package contracts

import (
	"context"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
)

type SubscriptionRepository interface {
	UpsertActiveSubscription(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error)
	ActivatePendingByUserID(ctx context.Context, userID string) (*models.Subscription, error)
}

type SubscriptionUsecase interface {
	DemoActivate(ctx context.Context, request *requests.DemoActivateRequest) (*responses.SubscriptionResponse, error)
	ActivateForUser(ctx context.Context, userID string) error
}
