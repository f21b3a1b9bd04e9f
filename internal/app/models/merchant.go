package models

import (
	"time"
)

type Merchant struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserID       string    `json:"user_id" bson:"user_id"`
	Name         string    `json:"name" bson:"name"`
	BusinessType string    `json:"business_type" bson:"business_type"`
	Country      string    `json:"country" bson:"country"`
	Website      string    `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type MerchantDocument struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	MerchantID  string    `json:"merchant_id" bson:"merchant_id"`
	DocType     string    `json:"doc_type" bson:"doc_type"`
	StoragePath string    `json:"storage_path" bson:"storage_path"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MerchantRiskProfile is the static per-merchant profile surfaced by the risk
// endpoint. Transaction-level scoring never reads it back; this record exists
// for the dashboard only.
type MerchantRiskProfile struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	MerchantID string    `json:"merchant_id" bson:"merchant_id"`
	RiskLevel  string    `json:"risk_level" bson:"risk_level"`
	RiskScore  int       `json:"risk_score" bson:"risk_score"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
