package models

import (
	"time"
)

type Subscription struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user_id" bson:"user_id"`
	Plan             string    `json:"plan" bson:"plan"`
	Status           string    `json:"status" bson:"status"`
	CurrentPeriodEnd time.Time `json:"current_period_end" bson:"current_period_end"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
