package contracts

import (
	"context"
	"railpay-service/internal/app/models"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	FindByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error)
	UpdateStatusByProviderRef(ctx context.Context, providerRef, status string, raw interface{}) (*models.Transaction, error)
}
