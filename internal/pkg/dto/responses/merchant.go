package responses

import (
	"time"
)

type MerchantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type"`
	Country      string    `json:"country"`
	Website      string    `json:"website,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type MerchantDocumentResponse struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	DocType     string    `json:"doc_type"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

type MerchantRiskProfileResponse struct {
	MerchantID string    `json:"merchant_id"`
	RiskLevel  string    `json:"risk_level"`
	RiskScore  int       `json:"risk_score"`
	Notes      string    `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuditLogResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	CreatedAt  time.Time `json:"created_at"`
}
