package requests

// CompliancePaymentRequest is the body of POST /payments/compliance: the
// orchestrated flow that runs the full decision engine before touching a rail.
type CompliancePaymentRequest struct {
	UserID             string `json:"userId" validate:"required"`
	Amount             int64  `json:"amount" validate:"gte=0"`
	Currency           string `json:"currency" validate:"omitempty,currency"`
	PaymentType        string `json:"paymentType" validate:"required,payment_type"`
	PaymentMethodToken string `json:"paymentMethodToken,omitempty"`
}

type ClientSessionRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Amount   int64  `json:"amount" validate:"gte=0"`
	Currency string `json:"currency" validate:"omitempty,currency"`
}

type CreateCardPaymentRequest struct {
	UserID             string `json:"userId" validate:"required"`
	Amount             int64  `json:"amount" validate:"gte=0"`
	Currency           string `json:"currency" validate:"omitempty,currency"`
	PaymentMethodToken string `json:"paymentMethodToken,omitempty"`
}

type CreateCryptoChargeRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Amount   int64  `json:"amount" validate:"gte=0"`
	Currency string `json:"currency" validate:"omitempty,currency"`
	Plan     string `json:"plan,omitempty"`
}

// CardAuthorizeRequest is the adapter-level card rail input.
type CardAuthorizeRequest struct {
	AmountMinorUnits   int64
	Currency           string
	PayerID            string
	PaymentMethodToken string
}

// CryptoChargeRequest is the adapter-level crypto rail input.
type CryptoChargeRequest struct {
	AmountMinorUnits int64
	Currency         string
	PayerID          string
	Plan             string
}
