package responses

import (
	"time"
)

type SubscriptionResponse struct {
	Status           string    `json:"status"`
	Plan             string    `json:"plan,omitempty"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	Mock             bool      `json:"mock,omitempty"`
	Message          string    `json:"message,omitempty"`
}
