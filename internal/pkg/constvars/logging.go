package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingRequestKey       = "request"
	LoggingResponseKey      = "response"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingQueryKey         = "query"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingResponseSizeKey  = "response_bytes"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingOperationKey     = "operation"
	LoggingEventKey         = "event"
	LoggingSeverityKey      = "severity"
	LoggingPayerIDKey       = "payer_id"
	LoggingMerchantIDKey    = "merchant_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingProviderKey      = "provider"
	LoggingProviderRefKey   = "provider_ref"
	LoggingRiskScoreKey     = "risk_score"
	LoggingAmountKey        = "amount_minor_units"
	LoggingCurrencyKey      = "currency"
	LoggingPaymentTypeKey   = "payment_type"
)
