package models

import (
	"time"

	"railpay-service/internal/pkg/constvars"
)

type Transaction struct {
	ID              string                    `json:"id" bson:"_id,omitempty"`
	UserID          string                    `json:"user_id" bson:"user_id"`
	Provider        constvars.PaymentProvider `json:"provider" bson:"provider"`
	ProviderRef     string                    `json:"provider_ref" bson:"provider_ref"`
	AmountCents     int64                     `json:"amount_cents" bson:"amount_cents"`
	Currency        string                    `json:"currency" bson:"currency"`
	Status          string                    `json:"status" bson:"status"`
	IdempotencyKey  string                    `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	Raw             interface{}               `json:"raw,omitempty" bson:"raw,omitempty"`
	CreatedAt       time.Time                 `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at" bson:"updated_at"`
}
