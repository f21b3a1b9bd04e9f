package contracts

import (
	"context"
	"railpay-service/internal/pkg/dto/requests"
)

// WebhookUsecase applies verified provider callbacks: transaction completion
// and subscription activation.
type WebhookUsecase interface {
	HandlePrimerEvent(ctx context.Context, event *requests.PrimerWebhookEvent) error
	HandleCoinbaseEvent(ctx context.Context, event *requests.CoinbaseWebhookEvent) error
}
