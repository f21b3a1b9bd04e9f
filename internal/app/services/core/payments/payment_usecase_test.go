package payments

import (
	"context"
	"errors"
	"testing"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/app/services/core/risk"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCardRail struct {
	authorizeCalls int
	sessionCalls   int
	err            error
	mock           bool
}

func (s *stubCardRail) CreateClientSession(ctx context.Context, request *requests.ClientSessionRequest) (*responses.ClientSessionResponse, error) {
	s.sessionCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &responses.ClientSessionResponse{ClientToken: "token-1", Mock: s.mock}, nil
}

func (s *stubCardRail) Authorize(ctx context.Context, request *requests.CardAuthorizeRequest) (*responses.CardAuthorizeResponse, error) {
	s.authorizeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &responses.CardAuthorizeResponse{
		ID:       "pay-123",
		Status:   constvars.PrimerStatusAuthorized,
		Amount:   request.AmountMinorUnits,
		Currency: request.Currency,
		Mock:     s.mock,
	}, nil
}

type stubCryptoRail struct {
	calls int
	err   error
}

func (s *stubCryptoRail) CreateCharge(ctx context.Context, request *requests.CryptoChargeRequest) (*responses.CryptoChargeResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &responses.CryptoChargeResponse{
		ChargeID:  "charge-123",
		HostedURL: "https://commerce.coinbase.com/charges/CODE1",
		Code:      "CODE1",
	}, nil
}

type stubAuditSink struct {
	entries []*models.AuditLog
	err     error
}

func (s *stubAuditSink) Record(ctx context.Context, entry *models.AuditLog) error {
	s.entries = append(s.entries, entry)
	return s.err
}

type stubTransactionRepository struct {
	created []*models.Transaction
	err     error
}

func (s *stubTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, transaction)
	return transaction, nil
}

func (s *stubTransactionRepository) FindByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepository) UpdateStatusByProviderRef(ctx context.Context, providerRef, status string, raw interface{}) (*models.Transaction, error) {
	return nil, nil
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

type fixture struct {
	usecase      contracts.PaymentUsecase
	cardRail     *stubCardRail
	cryptoRail   *stubCryptoRail
	auditSink    *stubAuditSink
	transactions *stubTransactionRepository
	subs         *stubSubscriptionUsecase
}

// newFixture wires a real decision engine over a fixed entropy sequence with
// stubbed rails and persistence. A single low draw keeps every flag quiet.
func newFixture(draws ...float64) *fixture {
	if len(draws) == 0 {
		draws = []float64{0.1}
	}
	f := &fixture{
		cardRail:     &stubCardRail{},
		cryptoRail:   &stubCryptoRail{},
		auditSink:    &stubAuditSink{},
		transactions: &stubTransactionRepository{},
		subs:         &stubSubscriptionUsecase{},
	}
	f.usecase = NewPaymentUsecase(
		risk.NewComplianceService(risk.NewSequenceEntropySource(draws...)),
		risk.NewProviderRouter(),
		f.cardRail,
		f.cryptoRail,
		f.auditSink,
		f.transactions,
		f.subs,
		zap.NewNop(),
	)
	return f
}

func TestProcessPaymentCardSuccess(t *testing.T) {
	f := newFixture(0.1)

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.True(t, outcome.Verdict.Passed)
	assert.Equal(t, 0, outcome.Verdict.RiskScore)
	require.NotNil(t, outcome.RailResult)
	assert.Equal(t, constvars.ProviderPrimer, outcome.RailResult.Provider)
	assert.Equal(t, "pay-123", outcome.RailResult.ProviderRef)
	assert.Equal(t, 1, f.cardRail.authorizeCalls)
	assert.Equal(t, 0, f.cryptoRail.calls)

	require.Len(t, f.transactions.created, 1)
	assert.Equal(t, constvars.TransactionStatusCompleted, f.transactions.created[0].Status)
	assert.Equal(t, int64(2999), f.transactions.created[0].AmountCents)

	require.Len(t, f.auditSink.entries, 1)
	assert.Equal(t, constvars.EntityTypeComplianceCheck, f.auditSink.entries[0].EntityType)
	assert.Equal(t, constvars.AuditActionComplianceCheckPerformed, f.auditSink.entries[0].Action)
}

func TestProcessPaymentCryptoRoutesToCryptoRail(t *testing.T) {
	f := newFixture(0.1)

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCrypto,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, constvars.ProviderCoinbase, outcome.RailResult.Provider)
	assert.Equal(t, "charge-123", outcome.RailResult.ProviderRef)
	assert.Equal(t, "CODE1", outcome.RailResult.Code)
	assert.Equal(t, constvars.TransactionStatusPending, outcome.RailResult.Status)
	assert.Equal(t, 0, f.cardRail.authorizeCalls)
	assert.Equal(t, 1, f.cryptoRail.calls)
}

func TestProcessPaymentComplianceRejectedSkipsRails(t *testing.T) {
	// Second draw at 0.99 trips the AML check, which is a hard failure.
	f := newFixture(0.1, 0.99)

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.False(t, outcome.Verdict.Passed)
	assert.Equal(t, models.ErrorKindComplianceRejected, outcome.ErrorKind)
	assert.Equal(t, constvars.ErrClientComplianceRejected, outcome.ErrorDetail)
	assert.Nil(t, outcome.RailResult)

	// Rejected payments never reach a rail and never write the ledger.
	assert.Equal(t, 0, f.cardRail.authorizeCalls)
	assert.Equal(t, 0, f.cryptoRail.calls)
	assert.Empty(t, f.transactions.created)

	// The compliance check itself is still audited.
	require.Len(t, f.auditSink.entries, 1)
}

func TestProcessPaymentRailErrorBecomesOutcome(t *testing.T) {
	f := newFixture(0.1)
	f.cardRail.err = exceptions.ErrRailAuthorize(errors.New("Primer API error: declined"))

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	})

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.True(t, outcome.Verdict.Passed)
	assert.Equal(t, models.ErrorKindRailError, outcome.ErrorKind)
	assert.Contains(t, outcome.ErrorDetail, "Primer API error")
	assert.Empty(t, f.transactions.created)
}

func TestProcessPaymentAuditFailureDoesNotBlock(t *testing.T) {
	f := newFixture(0.1)
	f.auditSink.err = errors.New("mongo down")

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 1, f.cardRail.authorizeCalls)
}

func TestProcessPaymentLedgerFailureStillSucceeds(t *testing.T) {
	f := newFixture(0.1)
	f.transactions.err = errors.New("mongo down")

	outcome, err := f.usecase.ProcessPayment(context.Background(), &models.PaymentRequest{
		PayerID:          "user-1",
		AmountMinorUnits: 2999,
		Currency:         "USD",
		PaymentType:      constvars.PaymentTypeCard,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestCreateCardPaymentPersistsAndActivatesMock(t *testing.T) {
	f := newFixture(0.1)
	f.cardRail.mock = true

	response, err := f.usecase.CreateCardPayment(context.Background(), &requests.CreateCardPaymentRequest{
		UserID:   "user-1",
		Amount:   2999,
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.True(t, response.Mock)
	require.Len(t, f.transactions.created, 1)
	assert.Equal(t, constvars.TransactionStatusCompleted, f.transactions.created[0].Status)
	assert.Equal(t, []string{"user-1"}, f.subs.activated)
}

func TestCreateCardPaymentLiveDoesNotActivate(t *testing.T) {
	f := newFixture(0.1)

	_, err := f.usecase.CreateCardPayment(context.Background(), &requests.CreateCardPaymentRequest{
		UserID:   "user-1",
		Amount:   2999,
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.Empty(t, f.subs.activated)
}

func TestCreateCryptoChargePersistsPendingByCode(t *testing.T) {
	f := newFixture(0.1)

	response, err := f.usecase.CreateCryptoCharge(context.Background(), &requests.CreateCryptoChargeRequest{
		UserID:   "user-1",
		Amount:   2999,
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, "charge-123", response.ChargeID)
	require.Len(t, f.transactions.created, 1)
	assert.Equal(t, constvars.TransactionStatusPending, f.transactions.created[0].Status)
	assert.Equal(t, "CODE1", f.transactions.created[0].ProviderRef)
}

func TestCreateClientSessionPassThrough(t *testing.T) {
	f := newFixture(0.1)

	response, err := f.usecase.CreateClientSession(context.Background(), &requests.ClientSessionRequest{
		UserID:   "user-1",
		Amount:   2999,
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-1", response.ClientToken)
	assert.Equal(t, 1, f.cardRail.sessionCalls)
}
