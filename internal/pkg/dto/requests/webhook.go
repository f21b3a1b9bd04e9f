package requests

import (
	"github.com/goccy/go-json"
)

// PrimerWebhookEvent mirrors Primer's webhook envelope. Data carries the
// payment object; only ID is read here, the rest is stored raw.
type PrimerWebhookEvent struct {
	EventType string            `json:"eventType"`
	Data      PrimerPaymentData `json:"data"`
}

type PrimerPaymentData struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}

// CoinbaseWebhookEvent mirrors Coinbase Commerce's webhook envelope.
type CoinbaseWebhookEvent struct {
	Event CoinbaseEventBody `json:"event"`
}

type CoinbaseEventBody struct {
	Type string             `json:"type"`
	Data CoinbaseChargeData `json:"data"`
}

type CoinbaseChargeData struct {
	ID       string            `json:"id"`
	Code     string            `json:"code"`
	Metadata map[string]string `json:"metadata"`
}
