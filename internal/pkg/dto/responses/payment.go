package responses

type ClientSessionResponse struct {
	ClientToken string `json:"clientToken"`
	Mock        bool   `json:"mock,omitempty"`
	Message     string `json:"message,omitempty"`
}

type CardAuthorizeResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Mock     bool   `json:"mock,omitempty"`
	Message  string `json:"message,omitempty"`
}

type CryptoChargeResponse struct {
	ChargeID  string `json:"chargeId"`
	HostedURL string `json:"hostedUrl"`
	Code      string `json:"code"`
	Mock      bool   `json:"mock,omitempty"`
	Message   string `json:"message,omitempty"`
}
