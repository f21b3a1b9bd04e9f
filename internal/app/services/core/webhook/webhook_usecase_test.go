package webhook

import (
	"context"
	"errors"
	"testing"

	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTransactionRepository struct {
	updatedRefs  []string
	updateStatus string
	returnNil    bool
	err          error
}

func (s *stubTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	return transaction, nil
}

func (s *stubTransactionRepository) FindByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepository) UpdateStatusByProviderRef(ctx context.Context, providerRef, status string, raw interface{}) (*models.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updatedRefs = append(s.updatedRefs, providerRef)
	s.updateStatus = status
	if s.returnNil {
		return nil, nil
	}
	return &models.Transaction{UserID: "user-1", ProviderRef: providerRef, Status: status}, nil
}

type stubSubscriptionUsecase struct {
	activated []string
}

func (s *stubSubscriptionUsecase) DemoActivate(ctx context.Context, request *requests.DemoActivateRequest) (*responses.SubscriptionResponse, error) {
	return nil, nil
}

func (s *stubSubscriptionUsecase) ActivateForUser(ctx context.Context, userID string) error {
	s.activated = append(s.activated, userID)
	return nil
}

func TestHandlePrimerEvent(t *testing.T) {
	t.Run("payment captured completes transaction and activates subscription", func(t *testing.T) {
		repo := &stubTransactionRepository{}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandlePrimerEvent(context.Background(), &requests.PrimerWebhookEvent{
			EventType: constvars.PrimerEventPaymentCaptured,
			Data:      requests.PrimerPaymentData{ID: "pay-123", Status: "CAPTURED"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"pay-123"}, repo.updatedRefs)
		assert.Equal(t, constvars.TransactionStatusCompleted, repo.updateStatus)
		assert.Equal(t, []string{"user-1"}, subs.activated)
	})

	t.Run("other event types are acknowledged without action", func(t *testing.T) {
		repo := &stubTransactionRepository{}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandlePrimerEvent(context.Background(), &requests.PrimerWebhookEvent{
			EventType: "PAYMENT_FAILED",
			Data:      requests.PrimerPaymentData{ID: "pay-123"},
		})

		require.NoError(t, err)
		assert.Empty(t, repo.updatedRefs)
		assert.Empty(t, subs.activated)
	})

	t.Run("unknown provider ref does not activate anything", func(t *testing.T) {
		repo := &stubTransactionRepository{returnNil: true}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandlePrimerEvent(context.Background(), &requests.PrimerWebhookEvent{
			EventType: constvars.PrimerEventPaymentCaptured,
			Data:      requests.PrimerPaymentData{ID: "pay-unknown"},
		})

		require.NoError(t, err)
		assert.Empty(t, subs.activated)
	})

	t.Run("repository error is propagated for retry", func(t *testing.T) {
		repo := &stubTransactionRepository{err: errors.New("mongo down")}
		uc := NewWebhookUsecase(repo, &stubSubscriptionUsecase{}, zap.NewNop())

		err := uc.HandlePrimerEvent(context.Background(), &requests.PrimerWebhookEvent{
			EventType: constvars.PrimerEventPaymentCaptured,
			Data:      requests.PrimerPaymentData{ID: "pay-123"},
		})

		assert.Error(t, err)
	})
}

func TestHandleCoinbaseEvent(t *testing.T) {
	t.Run("charge confirmed completes transaction by code and activates metadata user", func(t *testing.T) {
		repo := &stubTransactionRepository{}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandleCoinbaseEvent(context.Background(), &requests.CoinbaseWebhookEvent{
			Event: requests.CoinbaseEventBody{
				Type: constvars.CoinbaseEventChargeConfirm,
				Data: requests.CoinbaseChargeData{
					ID:       "charge-123",
					Code:     "CODE1",
					Metadata: map[string]string{"user_id": "user-2"},
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"CODE1"}, repo.updatedRefs)
		assert.Equal(t, []string{"user-2"}, subs.activated)
	})

	t.Run("missing metadata user is not an error", func(t *testing.T) {
		repo := &stubTransactionRepository{}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandleCoinbaseEvent(context.Background(), &requests.CoinbaseWebhookEvent{
			Event: requests.CoinbaseEventBody{
				Type: constvars.CoinbaseEventChargeConfirm,
				Data: requests.CoinbaseChargeData{Code: "CODE1"},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, subs.activated)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		repo := &stubTransactionRepository{}
		subs := &stubSubscriptionUsecase{}
		uc := NewWebhookUsecase(repo, subs, zap.NewNop())

		err := uc.HandleCoinbaseEvent(context.Background(), &requests.CoinbaseWebhookEvent{
			Event: requests.CoinbaseEventBody{
				Type: "charge:created",
				Data: requests.CoinbaseChargeData{Code: "CODE1"},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, repo.updatedRefs)
	})
}
