package constvars

// PaymentProvider identifies a downstream payment rail.
type PaymentProvider string

const (
	ProviderPrimer   PaymentProvider = "primer"
	ProviderCoinbase PaymentProvider = "coinbase"
	ProviderStripe   PaymentProvider = "stripe"
)

// PaymentType is the payment instrument declared by the caller.
type PaymentType string

const (
	PaymentTypeCard   PaymentType = "card"
	PaymentTypeCrypto PaymentType = "crypto"
	PaymentTypeOther  PaymentType = "other"
)

const (
	RailsModeMock = "mock"
	RailsModeLive = "live"
)

const (
	PrimerSandboxBaseURL    = "https://api.sandbox.primer.io"
	PrimerProductionBaseURL = "https://api.primer.io"
	PrimerEnvSandbox        = "sandbox"

	CoinbaseCommerceBaseURL    = "https://api.commerce.coinbase.com"
	CoinbaseCommerceAPIVersion = "2018-03-22"
	CoinbaseHeaderAPIVersion   = "X-CC-Version"

	CoinbaseHostedChargeURLFormat = "https://commerce.coinbase.com/charges/%s"
)

const (
	PrimerStatusAuthorized = "AUTHORIZED"

	PrimerEventPaymentCaptured = "PAYMENT_CAPTURED"
	CoinbaseEventChargeConfirm = "charge:confirmed"
)

const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusRejected  = "rejected"
	TransactionStatusFailed    = "failed"
)

const (
	MockPaymentRefPrefix = "mock_payment"
	MockChargeRefPrefix  = "mock_charge"
	MockChargeCodePrefix = "MOCK"
	MockChargeCodeLength = 6
)
