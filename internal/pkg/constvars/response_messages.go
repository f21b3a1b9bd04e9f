package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Payment messages
	PaymentProcessedSuccessMessage     = "payment processed successfully"
	ClientSessionCreatedSuccessMessage = "client session created successfully"
	CardPaymentCreatedSuccessMessage   = "card payment created successfully"
	CryptoChargeCreatedSuccessMessage  = "crypto charge created successfully"

	// Webhook messages
	WebhookAcceptedSuccessMessage = "webhook accepted"

	// Merchant messages
	MerchantCreatedSuccessMessage     = "merchant created successfully"
	MerchantDocumentUploadedSuccess   = "merchant document uploaded successfully"
	MerchantRiskProfileFetchedSuccess = "get merchant risk profile successfully"
	AuditLogEntryCreatedSuccess       = "audit log entry created successfully"

	// Subscription messages
	SubscriptionActivatedSuccessMessage  = "subscription activated successfully"
	SubscriptionDemoActivatedMockMessage = "mock subscription activation - set MONGODB_HOST for real database integration"
)
