package models

import (
	"railpay-service/internal/pkg/constvars"
)

// PaymentRequest is the immutable input to the decision engine. Amounts are in
// minor units (cents), currency is an ISO 4217 code.
type PaymentRequest struct {
	PayerID          string                `json:"payer_id"`
	AmountMinorUnits int64                 `json:"amount_minor_units"`
	Currency         string                `json:"currency"`
	PaymentType      constvars.PaymentType `json:"payment_type"`
	PaymentToken     string                `json:"payment_token,omitempty"`
}

// RailKind is the concrete rail selected for execution.
type RailKind string

const (
	RailCard   RailKind = "card"
	RailCrypto RailKind = "crypto"
)

// PaymentErrorKind classifies terminal payment failures.
type PaymentErrorKind string

const (
	ErrorKindComplianceRejected PaymentErrorKind = "compliance_rejected"
	ErrorKindRailError          PaymentErrorKind = "rail_error"
)

// RailResult is the opaque provider response carried back to the caller with
// enough data for the ledger write.
type RailResult struct {
	Provider    constvars.PaymentProvider `json:"provider"`
	ProviderRef string                    `json:"provider_ref"`
	Status      string                    `json:"status"`
	HostedURL   string                    `json:"hosted_url,omitempty"`
	Code        string                    `json:"code,omitempty"`
	Mock        bool                      `json:"mock,omitempty"`
	Raw         interface{}               `json:"raw,omitempty"`
}

// PaymentOutcome is the terminal value produced by the orchestrator for one
// request. The orchestrator does not retain it.
type PaymentOutcome struct {
	Success     bool              `json:"success"`
	Verdict     ComplianceVerdict `json:"compliance_result"`
	RailResult  *RailResult       `json:"payment_result,omitempty"`
	ErrorKind   PaymentErrorKind  `json:"error_kind,omitempty"`
	ErrorDetail string            `json:"error,omitempty"`
}
