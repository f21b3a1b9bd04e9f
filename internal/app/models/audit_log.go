package models

import (
	"time"
)

// AuditLog is the durable audit trail entry. Payload is stored as-is so the
// compliance checks list survives verbatim.
type AuditLog struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	EntityType string      `json:"entity_type" bson:"entity_type"`
	EntityID   string      `json:"entity_id" bson:"entity_id"`
	Action     string      `json:"action" bson:"action"`
	Payload    interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
	Actor      string      `json:"actor" bson:"actor"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}
